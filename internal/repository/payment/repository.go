package payment

import (
	"context"

	"shopmart-backend/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	// GetByOrder returns the first payment recorded for an order.
	GetByOrder(ctx context.Context, orderID int64) (*domain.Payment, error)
	// GetByOrderForUser returns the payment for an order the user owns.
	GetByOrderForUser(ctx context.Context, userID, orderID int64) (*domain.Payment, error)
	// UpdateStatus writes the payment status, mirrors it onto the order's
	// payment_status and, when orderStatus is non-nil, advances the order
	// status, all in one transaction.
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, orderStatus *domain.OrderStatus) (*domain.Payment, error)
}
