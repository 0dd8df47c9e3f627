package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"shopmart-backend/internal/config"
	"shopmart-backend/internal/domain"
)

type variantSeed struct {
	SKU      string
	Title    string
	Price    string
	Size     string
	Quantity int
}

type productSeed struct {
	Title       string
	Slug        string
	Description string
	BasePrice   string
	Variants    []variantSeed
}

// Apply inserts the role set, a super admin account and a small demo catalog
// for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool, cfg config.Config, logger *logrus.Logger) error {
	if err := ensureRoles(ctx, pool); err != nil {
		return fmt.Errorf("ensure roles: %w", err)
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@example.com")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "ChangeMe123!")
	if err := ensureSuperAdmin(ctx, pool, adminEmail, adminPassword, cfg.BcryptCost); err != nil {
		return fmt.Errorf("ensure super admin: %w", err)
	}
	logger.WithField("email", adminEmail).Info("super admin ensured")

	categoryID, err := ensureCategory(ctx, pool, "Apparel", "apparel")
	if err != nil {
		return fmt.Errorf("ensure category: %w", err)
	}

	products := []productSeed{
		{
			Title:       "Classic Cotton T-Shirt",
			Slug:        "classic-cotton-t-shirt",
			Description: "Soft combed cotton tee",
			BasePrice:   "20.00",
			Variants: []variantSeed{
				{SKU: "TSHIRT-CLS-M", Title: "Classic Cotton T-Shirt M", Price: "20.00", Size: "M", Quantity: 50},
				{SKU: "TSHIRT-CLS-L", Title: "Classic Cotton T-Shirt L", Price: "20.00", Size: "L", Quantity: 50},
			},
		},
		{
			Title:       "Zip Hoodie",
			Slug:        "zip-hoodie",
			Description: "Fleece-lined hoodie with full zip",
			BasePrice:   "45.00",
			Variants: []variantSeed{
				{SKU: "HOODIE-ZIP-M", Title: "Zip Hoodie M", Price: "45.00", Size: "M", Quantity: 25},
				{SKU: "HOODIE-ZIP-L", Title: "Zip Hoodie L", Price: "45.00", Size: "L", Quantity: 25},
			},
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, categoryID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	return nil
}

func ensureRoles(ctx context.Context, pool *pgxpool.Pool) error {
	for _, role := range domain.AllRoles {
		if _, err := pool.Exec(ctx, `
INSERT INTO roles (name)
VALUES ($1)
ON CONFLICT (name) DO NOTHING
`, string(role)); err != nil {
			return err
		}
	}
	return nil
}

func ensureSuperAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string, bcryptCost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	var userID int64
	err = pool.QueryRow(ctx, `
INSERT INTO users (email, password_hash, name)
VALUES ($1, $2, 'Super Admin')
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id
`, email, string(hash)).Scan(&userID)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
INSERT INTO user_roles (user_id, role_id)
SELECT $1, id FROM roles WHERE name = $2
ON CONFLICT DO NOTHING
`, userID, string(domain.RoleSuperAdmin))
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name, slug string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`, name, slug).Scan(&id)
	return id, err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID int64, p productSeed) error {
	var productID int64
	err := pool.QueryRow(ctx, `
INSERT INTO products (category_id, title, slug, description, base_price)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, base_price = EXCLUDED.base_price
RETURNING id
`, categoryID, p.Title, p.Slug, p.Description, p.BasePrice).Scan(&productID)
	if err != nil {
		return err
	}

	for _, v := range p.Variants {
		var variantID int64
		err := pool.QueryRow(ctx, `
INSERT INTO product_variants (product_id, sku, title, price, attributes)
VALUES ($1, $2, $3, $4, jsonb_build_object('size', $5::text))
ON CONFLICT (sku) DO UPDATE SET price = EXCLUDED.price
RETURNING id
`, productID, v.SKU, v.Title, v.Price, v.Size).Scan(&variantID)
		if err != nil {
			return err
		}

		var inventoryID int64
		var existed bool
		err = pool.QueryRow(ctx, `
INSERT INTO inventories (variant_id, quantity, safety_stock)
VALUES ($1, 0, 0)
ON CONFLICT (variant_id) DO UPDATE SET variant_id = EXCLUDED.variant_id
RETURNING id, (xmax <> 0)
`, variantID).Scan(&inventoryID, &existed)
		if err != nil {
			return err
		}
		if existed {
			continue
		}

		// Fresh stock lands through the ledger so the movement sum matches
		// the on-hand quantity.
		if _, err := pool.Exec(ctx, `
UPDATE inventories SET quantity = $2, updated_at = now() WHERE id = $1
`, inventoryID, v.Quantity); err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
INSERT INTO inventory_movements (inventory_id, variant_id, delta, reason)
VALUES ($1, $2, $3, $4)
`, inventoryID, variantID, v.Quantity, string(domain.ReasonSupplierInbound)); err != nil {
			return err
		}
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
