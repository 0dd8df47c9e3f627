package order

import (
	"context"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
)

// CheckoutInput carries everything the checkout transaction writes. Amounts
// are recomputed by the caller before the transaction starts.
type CheckoutInput struct {
	UserID int64
	// ShipToName is the recipient name snapshotted onto the order, derived
	// from the address label or its first line.
	ShipToName string
	Address    domain.Address
	Items      []domain.CartItem
	Coupon     *domain.Coupon

	Subtotal       decimal.Decimal
	ShippingAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	PaymentMethod domain.PaymentMethod
}

type Repository interface {
	// Checkout commits a cart as an order in a single transaction: inventory
	// re-check under row locks, order + item snapshots, a pending payment
	// for cash on delivery, stock decrement with ledger movements, coupon
	// redemption and cart clearing. Any failure rolls the whole unit back.
	Checkout(ctx context.Context, in CheckoutInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// GetByIDForUser enforces ownership in the query itself.
	GetByIDForUser(ctx context.Context, userID, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
}
