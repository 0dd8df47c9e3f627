package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"shopmart-backend/internal/domain"
)

// orderNumberAttempts bounds the number-collision retry loop inside the
// checkout transaction.
const orderNumberAttempts = 5

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

func (r *postgresRepo) Checkout(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Re-check stock under row locks so concurrent checkouts on the same
	// variant serialize here and at most one of them drains the last unit.
	type lockedLine struct {
		inventoryID int64
		item        domain.CartItem
	}
	locked := make([]lockedLine, 0, len(in.Items))
	for _, item := range in.Items {
		var invID int64
		var qty int
		err := tx.QueryRow(ctx, `
SELECT id, quantity
FROM inventories
WHERE variant_id = $1
FOR UPDATE
`, item.VariantID).Scan(&invID, &qty)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.BadRequest(fmt.Sprintf("insufficient stock for SKU %s", item.SKU))
			}
			return nil, err
		}
		if qty < item.Quantity {
			return nil, domain.BadRequest(fmt.Sprintf("insufficient stock for SKU %s", item.SKU))
		}
		locked = append(locked, lockedLine{inventoryID: invID, item: item})
	}

	number, err := generateOrderNumber(ctx, tx)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderNumber:    number,
		UserID:         in.UserID,
		AddressID:      in.Address.ID,
		ShipToName:     in.ShipToName,
		ShipToLine1:    in.Address.Line1,
		ShipToLine2:    in.Address.Line2,
		ShipToCity:     in.Address.City,
		ShipToState:    in.Address.State,
		ShipToPostal:   in.Address.PostalCode,
		ShipToCountry:  in.Address.Country,
		Subtotal:       in.Subtotal,
		ShippingAmount: in.ShippingAmount,
		TaxAmount:      in.TaxAmount,
		DiscountAmount: in.DiscountAmount,
		TotalAmount:    in.TotalAmount,
		Status:         domain.OrderPending,
		PaymentStatus:  domain.PaymentPending,
	}
	err = tx.QueryRow(ctx, `
INSERT INTO orders (order_number, user_id, address_id,
                    ship_to_name, ship_to_line1, ship_to_line2, ship_to_city,
                    ship_to_state, ship_to_postal, ship_to_country,
                    subtotal, shipping_amount, tax_amount, discount_amount, total_amount)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15)
RETURNING id, placed_at, updated_at
`,
		order.OrderNumber, order.UserID, order.AddressID,
		order.ShipToName, order.ShipToLine1, order.ShipToLine2, order.ShipToCity,
		order.ShipToState, order.ShipToPostal, order.ShipToCountry,
		order.Subtotal, order.ShippingAmount, order.TaxAmount, order.DiscountAmount, order.TotalAmount,
	).Scan(&order.ID, &order.PlacedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// Only cash-on-delivery orders get a payment row up front; gateway
	// methods create theirs when the gateway callback lands.
	if in.PaymentMethod == domain.PaymentMethodCOD {
		payment := domain.Payment{
			OrderID:        order.ID,
			Gateway:        string(in.PaymentMethod),
			Amount:         in.TotalAmount,
			Status:         domain.PaymentPending,
			TransactionRef: uuid.NewString(),
		}
		err = tx.QueryRow(ctx, `
INSERT INTO payments (order_id, gateway, amount, transaction_ref)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at
`, payment.OrderID, payment.Gateway, payment.Amount, payment.TransactionRef).
			Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
		if err != nil {
			return nil, err
		}
		order.Payments = append(order.Payments, payment)
	}

	for _, line := range locked {
		item := domain.OrderItem{
			OrderID:      order.ID,
			VariantID:    line.item.VariantID,
			ProductTitle: line.item.ProductTitle,
			SKU:          line.item.SKU,
			Quantity:     line.item.Quantity,
			Price:        line.item.Price,
			Total:        line.item.ItemTotal(),
		}
		err := tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, variant_id, product_title, sku, quantity, price, total)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`, item.OrderID, item.VariantID, item.ProductTitle, item.SKU, item.Quantity, item.Price, item.Total).
			Scan(&item.ID)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)

		cmd, err := tx.Exec(ctx, `
UPDATE inventories
SET quantity = quantity - $2, updated_at = now()
WHERE id = $1 AND quantity >= $2
`, line.inventoryID, line.item.Quantity)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, domain.BadRequest(fmt.Sprintf("insufficient stock for SKU %s", line.item.SKU))
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO inventory_movements (inventory_id, variant_id, delta, reason, actor_id)
VALUES ($1, $2, $3, $4, $5)
`, line.inventoryID, line.item.VariantID, -line.item.Quantity, string(domain.ReasonOrderPlaced), in.UserID); err != nil {
			return nil, err
		}
	}

	if in.Coupon != nil {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_coupons (order_id, coupon_id)
VALUES ($1, $2)
`, order.ID, in.Coupon.ID); err != nil {
			return nil, err
		}
		cmd, err := tx.Exec(ctx, `
UPDATE coupons
SET used_count = used_count + 1
WHERE id = $1 AND active AND (usage_limit IS NULL OR used_count < usage_limit)
`, in.Coupon.ID)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, domain.BadRequest("coupon usage limit reached")
		}
		order.Coupons = append(order.Coupons, *in.Coupon)
	}

	if _, err := tx.Exec(ctx, `
DELETE FROM cart_items ci
USING carts c
WHERE ci.cart_id = c.id AND c.user_id = $1
`, in.UserID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.WithFields(logrus.Fields{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"userId":      order.UserID,
	}).Info("order placed")
	return &order, nil
}

// generateOrderNumber produces an ORD-YYYYMMDD-NNNNNN number that is unused
// at the time of checking. The unique constraint on orders.order_number is
// the real guarantee; the retry loop just keeps collisions from failing the
// whole checkout.
func generateOrderNumber(ctx context.Context, tx pgx.Tx) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("ORD-%s-%06d", time.Now().UTC().Format("20060102"), rand.Intn(1000000))
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_number = $1)`, candidate).Scan(&exists); err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("order number generation exhausted after %d attempts", orderNumberAttempts)
}

const orderColumns = `
id, order_number, user_id, address_id,
ship_to_name, ship_to_line1, COALESCE(ship_to_line2, ''), ship_to_city,
COALESCE(ship_to_state, ''), ship_to_postal, ship_to_country,
subtotal, shipping_amount, tax_amount, discount_amount, total_amount,
status, payment_status, placed_at, updated_at`

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.fetchOne(ctx, q, id)
}

func (r *postgresRepo) GetByIDForUser(ctx context.Context, userID, id int64) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $2 AND user_id = $1`
	return r.fetchOne(ctx, q, userID, id)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY placed_at DESC`
	return r.fetchMany(ctx, q, userID)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY placed_at DESC`
	return r.fetchMany(ctx, q)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id
`
	var updatedID int64
	if err := r.pool.QueryRow(ctx, q, id, string(status)).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, updatedID)
}

func (r *postgresRepo) fetchOne(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if err := r.loadDetails(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) fetchMany(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
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

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var status, paymentStatus string
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.AddressID,
		&o.ShipToName, &o.ShipToLine1, &o.ShipToLine2, &o.ShipToCity,
		&o.ShipToState, &o.ShipToPostal, &o.ShipToCountry,
		&o.Subtotal, &o.ShippingAmount, &o.TaxAmount, &o.DiscountAmount, &o.TotalAmount,
		&status, &paymentStatus, &o.PlacedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	o.PaymentStatus = domain.PaymentStatus(paymentStatus)
	return &o, nil
}

func (r *postgresRepo) loadDetails(ctx context.Context, o *domain.Order) error {
	itemRows, err := r.pool.Query(ctx, `
SELECT id, order_id, variant_id, product_title, sku, quantity, price, total
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`, o.ID)
	if err != nil {
		return err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it domain.OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.VariantID, &it.ProductTitle, &it.SKU, &it.Quantity, &it.Price, &it.Total); err != nil {
			return err
		}
		o.Items = append(o.Items, it)
	}
	if err := itemRows.Err(); err != nil {
		return err
	}

	couponRows, err := r.pool.Query(ctx, `
SELECT c.id, c.code, c.type, c.value, c.min_cart_value, c.starts_at, c.ends_at,
       c.usage_limit, c.used_count, c.active, c.created_at
FROM order_coupons oc
JOIN coupons c ON c.id = oc.coupon_id
WHERE oc.order_id = $1
`, o.ID)
	if err != nil {
		return err
	}
	defer couponRows.Close()
	for couponRows.Next() {
		var c domain.Coupon
		var couponType string
		if err := couponRows.Scan(
			&c.ID, &c.Code, &couponType, &c.Value, &c.MinCartValue, &c.StartsAt, &c.EndsAt,
			&c.UsageLimit, &c.UsedCount, &c.Active, &c.CreatedAt,
		); err != nil {
			return err
		}
		c.Type = domain.CouponType(couponType)
		o.Coupons = append(o.Coupons, c)
	}
	if err := couponRows.Err(); err != nil {
		return err
	}

	paymentRows, err := r.pool.Query(ctx, `
SELECT id, order_id, gateway, amount, status, COALESCE(transaction_ref, ''), created_at, updated_at
FROM payments
WHERE order_id = $1
ORDER BY id ASC
`, o.ID)
	if err != nil {
		return err
	}
	defer paymentRows.Close()
	for paymentRows.Next() {
		var p domain.Payment
		var status string
		if err := paymentRows.Scan(&p.ID, &p.OrderID, &p.Gateway, &p.Amount, &status, &p.TransactionRef, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		p.Status = domain.PaymentStatus(status)
		o.Payments = append(o.Payments, p)
	}
	if err := paymentRows.Err(); err != nil {
		return err
	}

	shipmentRows, err := r.pool.Query(ctx, `
SELECT id, order_id, COALESCE(carrier, ''), COALESCE(tracking_number, ''), COALESCE(label_url, ''),
       status, shipped_at, delivered_at, created_at
FROM shipments
WHERE order_id = $1
ORDER BY id ASC
`, o.ID)
	if err != nil {
		return err
	}
	defer shipmentRows.Close()
	for shipmentRows.Next() {
		var s domain.Shipment
		var status string
		if err := shipmentRows.Scan(&s.ID, &s.OrderID, &s.Carrier, &s.TrackingNumber, &s.LabelURL, &status, &s.ShippedAt, &s.DeliveredAt, &s.CreatedAt); err != nil {
			return err
		}
		s.Status = domain.ShipmentStatus(status)
		o.Shipments = append(o.Shipments, s)
	}
	return shipmentRows.Err()
}
