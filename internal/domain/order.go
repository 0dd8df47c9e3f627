package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderReturned   OrderStatus = "RETURNED"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	}
	return false
}

// CanTransitionTo reports whether an administrative status change from s to
// next is allowed. DELIVERED is terminal; everything else is left to the
// operator.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s != OrderDelivered
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentInitiated, PaymentSuccess, PaymentFailed, PaymentCancelled, PaymentRefunded:
		return true
	}
	return false
}

// Order is an immutable snapshot of a completed checkout. Address fields are
// denormalized so later address edits do not alter historical orders.
type Order struct {
	ID            int64  `json:"id"`
	OrderNumber   string `json:"orderNumber"`
	UserID        int64  `json:"userId"`
	AddressID     int64  `json:"addressId"`
	ShipToName    string `json:"shipToName"`
	ShipToLine1   string `json:"shipToLine1"`
	ShipToLine2   string `json:"shipToLine2,omitempty"`
	ShipToCity    string `json:"shipToCity"`
	ShipToState   string `json:"shipToState,omitempty"`
	ShipToPostal  string `json:"shipToPostal"`
	ShipToCountry string `json:"shipToCountry"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`

	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	Items     []OrderItem `json:"items,omitempty"`
	Coupons   []Coupon    `json:"coupons,omitempty"`
	Payments  []Payment   `json:"payments,omitempty"`
	Shipments []Shipment  `json:"shipments,omitempty"`

	PlacedAt  time.Time `json:"placedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem is a line-item snapshot decoupled from the live catalog.
type OrderItem struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"orderId"`
	VariantID    int64           `json:"variantId"`
	ProductTitle string          `json:"productTitle"`
	SKU          string          `json:"sku"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
}
