package pricing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
)

// Calculator computes checkout totals. It holds no state beyond the
// configured rates, so results depend only on its inputs.
type Calculator struct {
	localCityMatch string
	localRate      decimal.Decimal
	remoteRate     decimal.Decimal
	taxRate        decimal.Decimal
}

func NewCalculator(localCityMatch string, localRate, remoteRate, taxRate decimal.Decimal) *Calculator {
	return &Calculator{
		localCityMatch: strings.ToLower(localCityMatch),
		localRate:      localRate,
		remoteRate:     remoteRate,
		taxRate:        taxRate,
	}
}

// Summary is the money breakdown of a checkout. All amounts are exact
// decimals; nothing is rounded through floats.
type Summary struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// Summarize prices a cart shipped to city, applying coupon when non-nil.
// Coupon checks run in a fixed order: validity window, minimum cart value,
// usage limit, then the discount itself. A total below zero is rejected.
func (c *Calculator) Summarize(items []domain.CartItem, city string, coupon *domain.Coupon, now time.Time) (*Summary, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.ItemTotal())
	}

	shipping := c.remoteRate
	if strings.Contains(strings.ToLower(city), c.localCityMatch) {
		shipping = c.localRate
	}

	tax := subtotal.Mul(c.taxRate)

	discount := decimal.Zero
	if coupon != nil {
		var err error
		discount, err = c.evaluateCoupon(coupon, subtotal, now)
		if err != nil {
			return nil, err
		}
	}

	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		return nil, domain.BadRequest("order total cannot be negative")
	}

	return &Summary{
		Subtotal:       subtotal,
		ShippingAmount: shipping,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TotalAmount:    total,
	}, nil
}

func (c *Calculator) evaluateCoupon(coupon *domain.Coupon, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !coupon.Active {
		return decimal.Zero, domain.BadRequest("invalid coupon")
	}
	if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
		return decimal.Zero, domain.BadRequest("coupon is not active yet")
	}
	if coupon.EndsAt != nil && now.After(*coupon.EndsAt) {
		return decimal.Zero, domain.BadRequest("coupon has expired")
	}
	if coupon.MinCartValue != nil && subtotal.LessThan(*coupon.MinCartValue) {
		return decimal.Zero, domain.BadRequest("cart value below coupon minimum")
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return decimal.Zero, domain.BadRequest("coupon usage limit reached")
	}

	switch coupon.Type {
	case domain.CouponFixed:
		// A fixed discount never exceeds the subtotal.
		if coupon.Value.GreaterThan(subtotal) {
			return subtotal, nil
		}
		return coupon.Value, nil
	case domain.CouponPercent:
		return subtotal.Mul(coupon.Value).Div(decimal.NewFromInt(100)), nil
	default:
		return decimal.Zero, domain.BadRequest("invalid coupon")
	}
}
