package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"shopmart-backend/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *logrus.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *logrus.Logger) Repository {
	if logger == nil {
		logger = logrus.New()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO products (category_id, title, slug, description, base_price, meta_title, meta_description)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''))
RETURNING id, created_at, updated_at
`
	var p domain.Product
	err = tx.QueryRow(ctx, q, in.CategoryID, in.Title, in.Slug, in.Description, in.BasePrice, in.MetaTitle, in.MetaDescription).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	p.CategoryID = in.CategoryID
	p.Title = in.Title
	p.Slug = in.Slug
	p.Description = in.Description
	p.BasePrice = in.BasePrice
	p.MetaTitle = in.MetaTitle
	p.MetaDescription = in.MetaDescription

	for i, url := range in.Images {
		var img domain.ProductImage
		err := tx.QueryRow(ctx, `
INSERT INTO product_images (product_id, url, alt, position)
VALUES ($1, $2, $3, $4)
RETURNING id
`, p.ID, url, fmt.Sprintf("%s - Image %d", in.Title, i+1), i).Scan(&img.ID)
		if err != nil {
			return nil, err
		}
		img.URL = url
		img.Position = i
		p.Images = append(p.Images, img)
	}

	for _, attr := range in.Attributes {
		for _, value := range attr.Values {
			var pa domain.ProductAttribute
			err := tx.QueryRow(ctx, `
INSERT INTO product_attributes (product_id, name, value)
VALUES ($1, $2, $3)
RETURNING id
`, p.ID, attr.Name, value).Scan(&pa.ID)
			if err != nil {
				return nil, err
			}
			pa.Name = attr.Name
			pa.Value = value
			p.Attributes = append(p.Attributes, pa)
		}
	}

	for _, v := range in.Variants {
		attrJSON, err := json.Marshal(v.Attributes)
		if err != nil {
			return nil, err
		}
		var variant domain.ProductVariant
		err = tx.QueryRow(ctx, `
INSERT INTO product_variants (product_id, sku, title, price, attributes)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at
`, p.ID, v.SKU, v.Title, v.Price, attrJSON).Scan(&variant.ID, &variant.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, domain.ErrAlreadyExists
			}
			return nil, err
		}
		variant.ProductID = p.ID
		variant.SKU = v.SKU
		variant.Title = v.Title
		variant.Price = v.Price
		variant.Attributes = v.Attributes

		// Every variant starts with an empty inventory row so adjustments
		// and checkout can rely on it existing.
		var inv domain.Inventory
		err = tx.QueryRow(ctx, `
INSERT INTO inventories (variant_id, quantity, safety_stock)
VALUES ($1, 0, 0)
RETURNING id, variant_id, quantity, safety_stock, updated_at
`, variant.ID).Scan(&inv.ID, &inv.VariantID, &inv.Quantity, &inv.SafetyStock, &inv.UpdatedAt)
		if err != nil {
			return nil, err
		}
		variant.Inventory = &inv
		p.Variants = append(p.Variants, variant)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.WithField("productId", p.ID).Info("product created")
	return &p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, category_id, title, slug, COALESCE(description, ''), base_price,
       COALESCE(meta_title, ''), COALESCE(meta_description, ''), created_at, updated_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Description, &p.BasePrice,
		&p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadDetails(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, category_id, title, slug, COALESCE(description, ''), base_price,
       COALESCE(meta_title, ''), COALESCE(meta_description, ''), created_at, updated_at
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Description, &p.BasePrice,
			&p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range result {
		if err := r.loadDetails(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    base_price = COALESCE($4, base_price),
    category_id = COALESCE($5, category_id),
    meta_title = COALESCE($6, meta_title),
    meta_description = COALESCE($7, meta_description),
    updated_at = now()
WHERE id = $1
RETURNING id
`
	var updatedID int64
	err := r.pool.QueryRow(ctx, q, id, in.Title, in.Description, in.BasePrice, in.CategoryID, in.MetaTitle, in.MetaDescription).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, updatedID)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetVariantByID(ctx context.Context, variantID int64) (*domain.ProductVariant, error) {
	const q = `
SELECT v.id, v.product_id, v.sku, v.title, v.price, v.attributes, v.created_at
FROM product_variants v
WHERE v.id = $1
`
	var v domain.ProductVariant
	var attrJSON []byte
	err := r.pool.QueryRow(ctx, q, variantID).Scan(&v.ID, &v.ProductID, &v.SKU, &v.Title, &v.Price, &attrJSON, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if len(attrJSON) > 0 {
		if err := json.Unmarshal(attrJSON, &v.Attributes); err != nil {
			return nil, err
		}
	}
	return &v, nil
}

func (r *postgresRepo) loadDetails(ctx context.Context, p *domain.Product) error {
	imgRows, err := r.pool.Query(ctx, `
SELECT id, url, COALESCE(alt, ''), position
FROM product_images
WHERE product_id = $1
ORDER BY position ASC
`, p.ID)
	if err != nil {
		return err
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img domain.ProductImage
		if err := imgRows.Scan(&img.ID, &img.URL, &img.Alt, &img.Position); err != nil {
			return err
		}
		p.Images = append(p.Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return err
	}

	attrRows, err := r.pool.Query(ctx, `
SELECT id, name, value
FROM product_attributes
WHERE product_id = $1
ORDER BY id ASC
`, p.ID)
	if err != nil {
		return err
	}
	defer attrRows.Close()
	for attrRows.Next() {
		var a domain.ProductAttribute
		if err := attrRows.Scan(&a.ID, &a.Name, &a.Value); err != nil {
			return err
		}
		p.Attributes = append(p.Attributes, a)
	}
	if err := attrRows.Err(); err != nil {
		return err
	}

	varRows, err := r.pool.Query(ctx, `
SELECT v.id, v.product_id, v.sku, v.title, v.price, v.attributes, v.created_at,
       i.id, i.variant_id, i.quantity, i.safety_stock, i.updated_at
FROM product_variants v
LEFT JOIN inventories i ON i.variant_id = v.id
WHERE v.product_id = $1
ORDER BY v.id ASC
`, p.ID)
	if err != nil {
		return err
	}
	defer varRows.Close()
	for varRows.Next() {
		var v domain.ProductVariant
		var attrJSON []byte
		var invID, invVariantID *int64
		var invQty, invSafety *int
		var invUpdated *time.Time
		if err := varRows.Scan(
			&v.ID, &v.ProductID, &v.SKU, &v.Title, &v.Price, &attrJSON, &v.CreatedAt,
			&invID, &invVariantID, &invQty, &invSafety, &invUpdated,
		); err != nil {
			return err
		}
		if len(attrJSON) > 0 {
			if err := json.Unmarshal(attrJSON, &v.Attributes); err != nil {
				return err
			}
		}
		if invID != nil {
			inv := domain.Inventory{ID: *invID, VariantID: *invVariantID, Quantity: *invQty, SafetyStock: *invSafety}
			if invUpdated != nil {
				inv.UpdatedAt = *invUpdated
			}
			v.Inventory = &inv
		}
		p.Variants = append(p.Variants, v)
	}
	return varRows.Err()
}
