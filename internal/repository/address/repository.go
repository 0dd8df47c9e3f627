package address

import (
	"context"

	"shopmart-backend/internal/domain"
)

// UpdateInput carries optional address fields; nil means leave unchanged.
type UpdateInput struct {
	Label             *string
	Line1             *string
	Line2             *string
	City              *string
	State             *string
	PostalCode        *string
	Country           *string
	IsDefaultShipping *bool
	IsDefaultBilling  *bool
}

type Repository interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	// GetByIDForUser returns the address only when it belongs to userID.
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Address, error)
	Update(ctx context.Context, id, userID int64, in UpdateInput) (*domain.Address, error)
	Delete(ctx context.Context, id, userID int64) error
}
