package address

import (
	"context"
	"errors"

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

const addressColumns = `
id, user_id, COALESCE(label, ''), line1, COALESCE(line2, ''), city, COALESCE(state, ''),
postal_code, country, is_default_shipping, is_default_billing, created_at`

func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO addresses (user_id, label, line1, line2, city, state, postal_code, country, is_default_shipping, is_default_billing)
VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8, $9, $10)
RETURNING ` + addressColumns
	return r.scanAddress(r.pool.QueryRow(ctx, q,
		a.UserID, a.Label, a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country,
		a.IsDefaultShipping, a.IsDefaultBilling,
	))
}

func (r *postgresRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM addresses
WHERE id = $1 AND user_id = $2
`
	return r.scanAddress(r.pool.QueryRow(ctx, q, id, userID))
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM addresses
WHERE user_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Label, &a.Line1, &a.Line2, &a.City, &a.State,
			&a.PostalCode, &a.Country, &a.IsDefaultShipping, &a.IsDefaultBilling, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id, userID int64, in UpdateInput) (*domain.Address, error) {
	const q = `
UPDATE addresses
SET label = COALESCE($3, label),
    line1 = COALESCE($4, line1),
    line2 = COALESCE($5, line2),
    city = COALESCE($6, city),
    state = COALESCE($7, state),
    postal_code = COALESCE($8, postal_code),
    country = COALESCE($9, country),
    is_default_shipping = COALESCE($10, is_default_shipping),
    is_default_billing = COALESCE($11, is_default_billing)
WHERE id = $1 AND user_id = $2
RETURNING ` + addressColumns
	return r.scanAddress(r.pool.QueryRow(ctx, q,
		id, userID, in.Label, in.Line1, in.Line2, in.City, in.State,
		in.PostalCode, in.Country, in.IsDefaultShipping, in.IsDefaultBilling,
	))
}

func (r *postgresRepo) Delete(ctx context.Context, id, userID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanAddress(row pgx.Row) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(
		&a.ID, &a.UserID, &a.Label, &a.Line1, &a.Line2, &a.City, &a.State,
		&a.PostalCode, &a.Country, &a.IsDefaultShipping, &a.IsDefaultBilling, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
