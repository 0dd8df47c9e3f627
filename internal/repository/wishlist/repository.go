package wishlist

import (
	"context"

	"shopmart-backend/internal/domain"
)

type Repository interface {
	// GetByUser returns the user's wishlist, creating an empty one on first
	// access.
	GetByUser(ctx context.Context, userID int64) (*domain.Wishlist, error)
	// AddProduct is idempotent: adding a product already present is a no-op.
	AddProduct(ctx context.Context, userID, productID int64) error
	RemoveProduct(ctx context.Context, userID, productID int64) error
}
