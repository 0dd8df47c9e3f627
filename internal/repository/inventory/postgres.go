package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) Adjust(ctx context.Context, variantID int64, delta int, reason domain.MovementReason, actorID *int64) (*domain.Inventory, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var inv domain.Inventory
	err = tx.QueryRow(ctx, `
INSERT INTO inventories (variant_id, quantity, safety_stock)
VALUES ($1, 0, 0)
ON CONFLICT (variant_id) DO UPDATE SET variant_id = EXCLUDED.variant_id
RETURNING id, variant_id, quantity, safety_stock, updated_at
`, variantID).Scan(&inv.ID, &inv.VariantID, &inv.Quantity, &inv.SafetyStock, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if inv.Quantity+delta < 0 {
		return nil, domain.BadRequest("adjustment would make stock negative")
	}

	err = tx.QueryRow(ctx, `
UPDATE inventories
SET quantity = quantity + $2, updated_at = now()
WHERE id = $1
RETURNING quantity, updated_at
`, inv.ID, delta).Scan(&inv.Quantity, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO inventory_movements (inventory_id, variant_id, delta, reason, actor_id)
VALUES ($1, $2, $3, $4, $5)
`, inv.ID, variantID, delta, string(reason), actorID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.WithFields(logrus.Fields{
		"variantId": variantID,
		"delta":     delta,
		"reason":    reason,
	}).Info("inventory adjusted")
	return &inv, nil
}

func (r *postgresRepo) GetByVariant(ctx context.Context, variantID int64) (*domain.Inventory, error) {
	const q = `
SELECT id, variant_id, quantity, safety_stock, updated_at
FROM inventories
WHERE variant_id = $1
`
	var inv domain.Inventory
	err := r.pool.QueryRow(ctx, q, variantID).Scan(&inv.ID, &inv.VariantID, &inv.Quantity, &inv.SafetyStock, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Inventory, error) {
	const q = `
SELECT id, variant_id, quantity, safety_stock, updated_at
FROM inventories
ORDER BY variant_id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Inventory
	for rows.Next() {
		var inv domain.Inventory
		if err := rows.Scan(&inv.ID, &inv.VariantID, &inv.Quantity, &inv.SafetyStock, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, inv)
	}
	return result, rows.Err()
}

func (r *postgresRepo) ListMovements(ctx context.Context, variantID int64) ([]domain.InventoryMovement, error) {
	const q = `
SELECT id, inventory_id, variant_id, delta, reason, actor_id, created_at
FROM inventory_movements
WHERE variant_id = $1
ORDER BY created_at DESC, id DESC
`
	rows, err := r.pool.Query(ctx, q, variantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.InventoryMovement
	for rows.Next() {
		var m domain.InventoryMovement
		var reason string
		if err := rows.Scan(&m.ID, &m.InventoryID, &m.VariantID, &m.Delta, &reason, &m.ActorID, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Reason = domain.MovementReason(reason)
		result = append(result, m)
	}
	return result, rows.Err()
}
