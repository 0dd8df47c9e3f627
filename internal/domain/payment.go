package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the gateway chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodBkash  PaymentMethod = "BKASH"
	PaymentMethodPaypal PaymentMethod = "PAYPAL"
)

// ValidPaymentMethod reports whether s is a supported payment method.
func ValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case PaymentMethodCOD, PaymentMethodBkash, PaymentMethodPaypal:
		return true
	}
	return false
}

type Payment struct {
	ID             int64           `json:"id"`
	OrderID        int64           `json:"orderId"`
	Gateway        string          `json:"gateway"`
	Amount         decimal.Decimal `json:"amount"`
	Status         PaymentStatus   `json:"status"`
	TransactionRef string          `json:"transactionRef,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
