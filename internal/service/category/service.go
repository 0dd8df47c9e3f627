package category

import (
	"context"

	"shopmart-backend/internal/domain"
	categoryrepo "shopmart-backend/internal/repository/category"
)

type Service struct {
	repo categoryRepo
}

type categoryRepo interface {
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, in categoryrepo.UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

func New(repo categoryRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	ParentID *int64 `json:"parentId"`
}

type UpdateInput struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	ParentID *int64  `json:"parentId"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Name)
	}
	return s.repo.Create(ctx, domain.Category{
		Name:     in.Name,
		Slug:     slug,
		ParentID: in.ParentID,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Category, error) {
	return s.repo.Update(ctx, id, categoryrepo.UpdateInput{
		Name:     in.Name,
		Slug:     in.Slug,
		ParentID: in.ParentID,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
