package product

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
	productrepo "shopmart-backend/internal/repository/product"
	"shopmart-backend/internal/service/category"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id int64, in productrepo.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetVariantByID(ctx context.Context, variantID int64) (*domain.ProductVariant, error)
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	CategoryID      int64            `json:"categoryId" binding:"required"`
	Title           string           `json:"title" binding:"required"`
	Slug            string           `json:"slug"`
	Description     string           `json:"description"`
	BasePrice       decimal.Decimal  `json:"basePrice" binding:"required"`
	MetaTitle       string           `json:"metaTitle"`
	MetaDescription string           `json:"metaDescription"`
	Images          []string         `json:"images"`
	Attributes      []AttributeInput `json:"attributes"`
	Variants        []VariantInput   `json:"variants" binding:"required,min=1,dive"`
}

type AttributeInput struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required,min=1"`
}

type VariantInput struct {
	SKU        string            `json:"sku" binding:"required"`
	Title      string            `json:"title"`
	Price      decimal.Decimal   `json:"price" binding:"required"`
	Attributes map[string]string `json:"attributes"`
}

type UpdateInput struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	BasePrice       *decimal.Decimal `json:"basePrice"`
	CategoryID      *int64           `json:"categoryId"`
	MetaTitle       *string          `json:"metaTitle"`
	MetaDescription *string          `json:"metaDescription"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	slug := in.Slug
	if slug == "" {
		slug = category.Slugify(in.Title)
	}
	repoIn := productrepo.CreateInput{
		CategoryID:      in.CategoryID,
		Title:           in.Title,
		Slug:            slug,
		Description:     in.Description,
		BasePrice:       in.BasePrice,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		Images:          in.Images,
	}
	for _, a := range in.Attributes {
		repoIn.Attributes = append(repoIn.Attributes, productrepo.AttributeInput{Name: a.Name, Values: a.Values})
	}
	for _, v := range in.Variants {
		title := v.Title
		if title == "" {
			title = in.Title
		}
		repoIn.Variants = append(repoIn.Variants, productrepo.VariantInput{
			SKU:        v.SKU,
			Title:      title,
			Price:      v.Price,
			Attributes: v.Attributes,
		})
	}

	created, err := s.repo.Create(ctx, repoIn)
	if errors.Is(err, domain.ErrAlreadyExists) && in.Slug == "" {
		// Derived slug collided; retry once with a random suffix. A SKU
		// conflict will surface again and propagate.
		repoIn.Slug = fmt.Sprintf("%s-%04x", slug, rand.Intn(0x10000))
		return s.repo.Create(ctx, repoIn)
	}
	return created, err
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	return s.repo.Update(ctx, id, productrepo.UpdateInput{
		Title:           in.Title,
		Description:     in.Description,
		BasePrice:       in.BasePrice,
		CategoryID:      in.CategoryID,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetVariant(ctx context.Context, variantID int64) (*domain.ProductVariant, error) {
	return s.repo.GetVariantByID(ctx, variantID)
}
