package wishlist

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopmart-backend/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID int64) (*domain.Wishlist, error) {
	w, err := r.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}

	const q = `
SELECT wi.id, wi.wishlist_id, wi.product_id, wi.created_at,
       p.title, p.slug, p.base_price
FROM wishlist_items wi
JOIN products p ON p.id = wi.product_id
WHERE wi.wishlist_id = $1
ORDER BY wi.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.WishlistItem
		var product domain.Product
		if err := rows.Scan(
			&item.ID, &item.WishlistID, &item.ProductID, &item.CreatedAt,
			&product.Title, &product.Slug, &product.BasePrice,
		); err != nil {
			return nil, err
		}
		product.ID = item.ProductID
		item.Product = &product
		w.Items = append(w.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *postgresRepo) AddProduct(ctx context.Context, userID, productID int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var wishlistID int64
	err = tx.QueryRow(ctx, `
INSERT INTO wishlists (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id
`, userID).Scan(&wishlistID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO wishlist_items (wishlist_id, product_id)
VALUES ($1, $2)
ON CONFLICT (wishlist_id, product_id) DO NOTHING
`, wishlistID, productID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveProduct(ctx context.Context, userID, productID int64) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM wishlist_items wi
USING wishlists w
WHERE wi.wishlist_id = w.id AND w.user_id = $1 AND wi.product_id = $2
`, userID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ensure(ctx context.Context, userID int64) (*domain.Wishlist, error) {
	var w domain.Wishlist
	err := r.pool.QueryRow(ctx, `
INSERT INTO wishlists (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id, user_id, created_at
`, userID).Scan(&w.ID, &w.UserID, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
