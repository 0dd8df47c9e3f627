package product

import (
	"context"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
)

// CreateInput holds everything needed to create a product with its images,
// attributes and variants in one transaction. Every variant also gets a
// zero-initialized inventory row.
type CreateInput struct {
	CategoryID      int64
	Title           string
	Slug            string
	Description     string
	BasePrice       decimal.Decimal
	MetaTitle       string
	MetaDescription string
	Images          []string
	Attributes      []AttributeInput
	Variants        []VariantInput
}

type AttributeInput struct {
	Name   string
	Values []string
}

type VariantInput struct {
	SKU        string
	Title      string
	Price      decimal.Decimal
	Attributes map[string]string
}

type UpdateInput struct {
	Title           *string
	Description     *string
	BasePrice       *decimal.Decimal
	CategoryID      *int64
	MetaTitle       *string
	MetaDescription *string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetVariantByID(ctx context.Context, variantID int64) (*domain.ProductVariant, error)
}
