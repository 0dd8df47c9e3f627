package shipment

import (
	"context"

	"shopmart-backend/internal/domain"
)

type CreateInput struct {
	OrderID        int64
	Carrier        string
	TrackingNumber string
	LabelURL       string
}

type Repository interface {
	// Create inserts an IN_TRANSIT shipment with shippedAt set and moves the
	// order to SHIPPED in the same transaction.
	Create(ctx context.Context, in CreateInput) (*domain.Shipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Shipment, error)
	ExistsForOrder(ctx context.Context, orderID int64) (bool, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Shipment, error)
	// UpdateStatus writes the shipment status and timestamps and, when
	// orderStatus is non-nil, syncs the order status in the same transaction.
	UpdateStatus(ctx context.Context, id int64, status domain.ShipmentStatus, orderStatus *domain.OrderStatus) (*domain.Shipment, error)
}
