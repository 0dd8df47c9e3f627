package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, variantID int64, quantity int, unitPrice decimal.Decimal) error
	UpdateItemQuantity(ctx context.Context, userID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}

type productRepo interface {
	GetVariantByID(ctx context.Context, variantID int64) (*domain.ProductVariant, error)
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type AddItemInput struct {
	VariantID int64 `json:"variantId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

// View is a cart with derived totals.
type View struct {
	domain.Cart
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Get returns the cart with its subtotal. A user who never added anything
// gets an empty cart rather than a 404.
func (s *Service) Get(ctx context.Context, userID int64) (*View, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			empty := domain.Cart{UserID: userID, Items: []domain.CartItem{}}
			return &View{Cart: empty, Subtotal: decimal.Zero}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &View{Cart: *cart, Subtotal: cart.Subtotal()}, nil
}

func (s *Service) AddItem(ctx context.Context, userID int64, in AddItemInput) (*View, error) {
	if in.Quantity <= 0 {
		return nil, domain.BadRequest("quantity must be positive")
	}
	variant, err := s.products.GetVariantByID(ctx, in.VariantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.BadRequest("variant not found")
		}
		return nil, err
	}
	if err := s.repo.AddItem(ctx, userID, variant.ID, in.Quantity, variant.Price); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// UpdateItem sets an item's quantity; zero or negative removes the line.
func (s *Service) UpdateItem(ctx context.Context, userID, itemID int64, in UpdateItemInput) (*View, error) {
	var err error
	if in.Quantity <= 0 {
		err = s.repo.RemoveItem(ctx, userID, itemID)
	} else {
		err = s.repo.UpdateItemQuantity(ctx, userID, itemID, in.Quantity)
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, itemID int64) (*View, error) {
	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.repo.Clear(ctx, userID)
}
