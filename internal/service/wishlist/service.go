package wishlist

import (
	"context"
	"errors"

	"shopmart-backend/internal/domain"
)

type Service struct {
	repo     wishlistRepo
	products productRepo
}

type wishlistRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Wishlist, error)
	AddProduct(ctx context.Context, userID, productID int64) error
	RemoveProduct(ctx context.Context, userID, productID int64) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo wishlistRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type AddInput struct {
	ProductID int64 `json:"productId" binding:"required"`
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.Wishlist, error) {
	w, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w.Items == nil {
		w.Items = []domain.WishlistItem{}
	}
	return w, nil
}

func (s *Service) Add(ctx context.Context, userID int64, in AddInput) (*domain.Wishlist, error) {
	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.BadRequest("product not found")
		}
		return nil, err
	}
	if err := s.repo.AddProduct(ctx, userID, in.ProductID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID, productID int64) (*domain.Wishlist, error) {
	if err := s.repo.RemoveProduct(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}
