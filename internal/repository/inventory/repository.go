package inventory

import (
	"context"

	"shopmart-backend/internal/domain"
)

type Repository interface {
	// Adjust applies a signed delta to a variant's stock and records the
	// movement in the same transaction. A zero inventory row is created on
	// first use. A delta that would take quantity below zero is rejected.
	Adjust(ctx context.Context, variantID int64, delta int, reason domain.MovementReason, actorID *int64) (*domain.Inventory, error)
	GetByVariant(ctx context.Context, variantID int64) (*domain.Inventory, error)
	List(ctx context.Context) ([]domain.Inventory, error)
	ListMovements(ctx context.Context, variantID int64) ([]domain.InventoryMovement, error)
}
