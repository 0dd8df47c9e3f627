package user

import (
	"context"

	"shopmart-backend/internal/domain"
)

// UpdateInput carries optional profile fields; nil means leave unchanged.
type UpdateInput struct {
	Name  *string
	Phone *string
	Email *string
}

type Repository interface {
	// Create inserts the user and assigns the given roles in one transaction.
	Create(ctx context.Context, u domain.User, roles []domain.Role) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
