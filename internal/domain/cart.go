package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the per-user shopping cart, created lazily on first item add.
type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CartItem holds one (cart, variant) line; repeated adds of the same variant
// increment Quantity. Price is the unit price captured at add time.
type CartItem struct {
	ID           int64           `json:"id"`
	CartID       int64           `json:"cartId"`
	VariantID    int64           `json:"variantId"`
	SKU          string          `json:"sku"`
	ProductTitle string          `json:"productTitle"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ItemTotal returns price times quantity in exact decimal arithmetic.
func (i CartItem) ItemTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Subtotal sums every line total in exact decimal arithmetic.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.ItemTotal())
	}
	return sum
}
