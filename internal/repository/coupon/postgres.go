package coupon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopmart-backend/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const couponColumns = `
id, code, type, value, min_cart_value, starts_at, ends_at, usage_limit, used_count, active, created_at`

func (r *postgresRepo) Create(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	const q = `
INSERT INTO coupons (code, type, value, min_cart_value, starts_at, ends_at, usage_limit, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + couponColumns
	return r.scanCoupon(r.pool.QueryRow(ctx, q,
		c.Code, string(c.Type), c.Value, c.MinCartValue, c.StartsAt, c.EndsAt, c.UsageLimit, c.Active,
	))
}

func (r *postgresRepo) GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	const q = `
SELECT ` + couponColumns + `
FROM coupons
WHERE code = $1 AND active
LIMIT 1
`
	return r.scanCoupon(r.pool.QueryRow(ctx, q, code))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Coupon, error) {
	const q = `
SELECT ` + couponColumns + `
FROM coupons
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Coupon
	for rows.Next() {
		var c domain.Coupon
		var couponType string
		if err := rows.Scan(
			&c.ID, &c.Code, &couponType, &c.Value, &c.MinCartValue,
			&c.StartsAt, &c.EndsAt, &c.UsageLimit, &c.UsedCount, &c.Active, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.Type = domain.CouponType(couponType)
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) scanCoupon(row pgx.Row) (*domain.Coupon, error) {
	var c domain.Coupon
	var couponType string
	err := row.Scan(
		&c.ID, &c.Code, &couponType, &c.Value, &c.MinCartValue,
		&c.StartsAt, &c.EndsAt, &c.UsageLimit, &c.UsedCount, &c.Active, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	c.Type = domain.CouponType(couponType)
	return &c, nil
}
