package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int64              `json:"id"`
	CategoryID      int64              `json:"categoryId"`
	Title           string             `json:"title"`
	Slug            string             `json:"slug"`
	Description     string             `json:"description,omitempty"`
	BasePrice       decimal.Decimal    `json:"basePrice"`
	MetaTitle       string             `json:"metaTitle,omitempty"`
	MetaDescription string             `json:"metaDescription,omitempty"`
	Images          []ProductImage     `json:"images,omitempty"`
	Attributes      []ProductAttribute `json:"attributes,omitempty"`
	Variants        []ProductVariant   `json:"variants,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type ProductImage struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Alt      string `json:"alt,omitempty"`
	Position int    `json:"position"`
}

// ProductAttribute links an attribute name to one concrete value of a product
// (e.g. Color=Red). Variants carry their own attribute combination as JSON.
type ProductAttribute struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductVariant is the purchasable SKU-level instance of a product.
type ProductVariant struct {
	ID         int64             `json:"id"`
	ProductID  int64             `json:"productId"`
	SKU        string            `json:"sku"`
	Title      string            `json:"title"`
	Price      decimal.Decimal   `json:"price"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Inventory  *Inventory        `json:"inventory,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}
