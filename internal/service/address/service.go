package address

import (
	"context"

	"shopmart-backend/internal/domain"
	addressrepo "shopmart-backend/internal/repository/address"
)

type Service struct {
	repo addressRepo
}

type addressRepo interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Address, error)
	Update(ctx context.Context, id, userID int64, in addressrepo.UpdateInput) (*domain.Address, error)
	Delete(ctx context.Context, id, userID int64) error
}

func New(repo addressRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Label             string `json:"label"`
	Line1             string `json:"line1" binding:"required"`
	Line2             string `json:"line2"`
	City              string `json:"city" binding:"required"`
	State             string `json:"state"`
	PostalCode        string `json:"postalCode" binding:"required"`
	Country           string `json:"country" binding:"required"`
	IsDefaultShipping bool   `json:"isDefaultShipping"`
	IsDefaultBilling  bool   `json:"isDefaultBilling"`
}

type UpdateInput struct {
	Label             *string `json:"label"`
	Line1             *string `json:"line1"`
	Line2             *string `json:"line2"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	PostalCode        *string `json:"postalCode"`
	Country           *string `json:"country"`
	IsDefaultShipping *bool   `json:"isDefaultShipping"`
	IsDefaultBilling  *bool   `json:"isDefaultBilling"`
}

func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (*domain.Address, error) {
	return s.repo.Create(ctx, domain.Address{
		UserID:            userID,
		Label:             in.Label,
		Line1:             in.Line1,
		Line2:             in.Line2,
		City:              in.City,
		State:             in.State,
		PostalCode:        in.PostalCode,
		Country:           in.Country,
		IsDefaultShipping: in.IsDefaultShipping,
		IsDefaultBilling:  in.IsDefaultBilling,
	})
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Address, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id int64, in UpdateInput) (*domain.Address, error) {
	return s.repo.Update(ctx, id, userID, addressrepo.UpdateInput{
		Label:             in.Label,
		Line1:             in.Line1,
		Line2:             in.Line2,
		City:              in.City,
		State:             in.State,
		PostalCode:        in.PostalCode,
		Country:           in.Country,
		IsDefaultShipping: in.IsDefaultShipping,
		IsDefaultBilling:  in.IsDefaultBilling,
	})
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, id, userID)
}
