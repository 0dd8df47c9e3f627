package inventory

import (
	"context"
	"errors"

	"shopmart-backend/internal/domain"
)

type Service struct {
	repo     inventoryRepo
	products productRepo
}

type inventoryRepo interface {
	Adjust(ctx context.Context, variantID int64, delta int, reason domain.MovementReason, actorID *int64) (*domain.Inventory, error)
	GetByVariant(ctx context.Context, variantID int64) (*domain.Inventory, error)
	List(ctx context.Context) ([]domain.Inventory, error)
	ListMovements(ctx context.Context, variantID int64) ([]domain.InventoryMovement, error)
}

type productRepo interface {
	GetVariantByID(ctx context.Context, variantID int64) (*domain.ProductVariant, error)
}

func New(repo inventoryRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type AdjustInput struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required,movementreason"`
}

// Adjust applies a manual stock correction. Delta must be non-zero and the
// reason must come from the closed reason set.
func (s *Service) Adjust(ctx context.Context, actorID, variantID int64, in AdjustInput) (*domain.Inventory, error) {
	if in.Delta == 0 {
		return nil, domain.BadRequest("delta must be non-zero")
	}
	if !domain.ValidMovementReason(in.Reason) {
		return nil, domain.BadRequest("invalid movement reason")
	}
	if _, err := s.products.GetVariantByID(ctx, variantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.BadRequest("variant not found")
		}
		return nil, err
	}
	return s.repo.Adjust(ctx, variantID, in.Delta, domain.MovementReason(in.Reason), &actorID)
}

// StockView pairs current stock with its movement history.
type StockView struct {
	domain.Inventory
	Movements []domain.InventoryMovement `json:"movements,omitempty"`
}

func (s *Service) Get(ctx context.Context, variantID int64, withMovements bool) (*StockView, error) {
	inv, err := s.repo.GetByVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	view := StockView{Inventory: *inv}
	if withMovements {
		view.Movements, err = s.repo.ListMovements(ctx, variantID)
		if err != nil {
			return nil, err
		}
	}
	return &view, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Inventory, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListMovements(ctx context.Context, variantID int64) ([]domain.InventoryMovement, error) {
	return s.repo.ListMovements(ctx, variantID)
}
