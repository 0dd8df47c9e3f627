package shipment

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

const shipmentColumns = `
id, order_id, COALESCE(carrier, ''), COALESCE(tracking_number, ''), COALESCE(label_url, ''),
status, shipped_at, delivered_at, created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Shipment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	s, err := scanShipment(tx.QueryRow(ctx, `
INSERT INTO shipments (order_id, carrier, tracking_number, label_url, status, shipped_at)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, now())
RETURNING `+shipmentColumns,
		in.OrderID, in.Carrier, in.TrackingNumber, in.LabelURL, string(domain.ShipmentInTransit)))
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
`, in.OrderID, string(domain.OrderShipped)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Shipment, error) {
	const q = `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	return scanShipment(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ExistsForOrder(ctx context.Context, orderID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shipments WHERE order_id = $1)`, orderID).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.Shipment, error) {
	const q = `SELECT ` + shipmentColumns + ` FROM shipments WHERE order_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status domain.ShipmentStatus, orderStatus *domain.OrderStatus) (*domain.Shipment, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	s, err := scanShipment(tx.QueryRow(ctx, `
UPDATE shipments
SET status = $2,
    shipped_at   = CASE WHEN $2 = 'IN_TRANSIT' AND shipped_at IS NULL THEN now() ELSE shipped_at END,
    delivered_at = CASE WHEN $2 = 'DELIVERED' THEN now() ELSE delivered_at END
WHERE id = $1
RETURNING `+shipmentColumns, id, string(status)))
	if err != nil {
		return nil, err
	}

	if orderStatus != nil {
		if _, err := tx.Exec(ctx, `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
`, s.OrderID, string(*orderStatus)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func scanShipment(row pgx.Row) (*domain.Shipment, error) {
	var s domain.Shipment
	var status string
	err := row.Scan(&s.ID, &s.OrderID, &s.Carrier, &s.TrackingNumber, &s.LabelURL, &status, &s.ShippedAt, &s.DeliveredAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	s.Status = domain.ShipmentStatus(status)
	return &s, nil
}
