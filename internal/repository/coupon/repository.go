package coupon

import (
	"context"

	"shopmart-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	// GetActiveByCode returns the active coupon with the given code, or
	// ErrNotFound. Validity-window and usage checks are the caller's job.
	GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
}
