package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
)

type Repository interface {
	// GetByUser returns the user's cart with items, or ErrNotFound when the
	// cart has never been created.
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	// AddItem upserts the cart and its (cart, variant) line: an existing line
	// has its quantity incremented, a new line captures unitPrice.
	AddItem(ctx context.Context, userID, variantID int64, quantity int, unitPrice decimal.Decimal) error
	// UpdateItemQuantity sets the quantity of an item owned by userID.
	UpdateItemQuantity(ctx context.Context, userID, itemID int64, quantity int) error
	// RemoveItem deletes an item owned by userID.
	RemoveItem(ctx context.Context, userID, itemID int64) error
	// Clear deletes every item; the cart row persists.
	Clear(ctx context.Context, userID int64) error
}
