package category

import (
	"context"

	"shopmart-backend/internal/domain"
)

type UpdateInput struct {
	Name     *string
	Slug     *string
	ParentID *int64
}

type Repository interface {
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
