package payment

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

const paymentColumns = `
id, order_id, gateway, amount, status, COALESCE(transaction_ref, ''), created_at, updated_at`

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByOrder(ctx context.Context, orderID int64) (*domain.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1 ORDER BY id ASC LIMIT 1`
	return scanPayment(r.pool.QueryRow(ctx, q, orderID))
}

func (r *postgresRepo) GetByOrderForUser(ctx context.Context, userID, orderID int64) (*domain.Payment, error) {
	const q = `
SELECT ` + paymentColumns + `
FROM payments p
WHERE p.order_id = $2
  AND EXISTS (SELECT 1 FROM orders o WHERE o.id = p.order_id AND o.user_id = $1)
ORDER BY p.id ASC
LIMIT 1
`
	return scanPayment(r.pool.QueryRow(ctx, q, userID, orderID))
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, orderStatus *domain.OrderStatus) (*domain.Payment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	p, err := scanPayment(tx.QueryRow(ctx, `
UPDATE payments
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING `+paymentColumns, id, string(status)))
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
UPDATE orders
SET payment_status = $2, updated_at = now()
WHERE id = $1
`, p.OrderID, string(status)); err != nil {
		return nil, err
	}

	if orderStatus != nil {
		if _, err := tx.Exec(ctx, `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
`, p.OrderID, string(*orderStatus)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	var status string
	err := row.Scan(&p.ID, &p.OrderID, &p.Gateway, &p.Amount, &status, &p.TransactionRef, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Status = domain.PaymentStatus(status)
	return &p, nil
}
