package shipment

import (
	"context"

	"github.com/sirupsen/logrus"

	"shopmart-backend/internal/domain"
	shipmentrepo "shopmart-backend/internal/repository/shipment"
)

type Service struct {
	repo   shipmentRepo
	orders orderRepo
	logger *logrus.Logger
}

type shipmentRepo interface {
	Create(ctx context.Context, in shipmentrepo.CreateInput) (*domain.Shipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Shipment, error)
	ExistsForOrder(ctx context.Context, orderID int64) (bool, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Shipment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ShipmentStatus, orderStatus *domain.OrderStatus) (*domain.Shipment, error)
}

type orderRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

func New(repo shipmentRepo, orders orderRepo, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{repo: repo, orders: orders, logger: logger}
}

type CreateInput struct {
	OrderID        int64  `json:"orderId" binding:"required"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	LabelURL       string `json:"labelUrl"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,shipmentstatus"`
}

// Create dispatches an order: one shipment per order, never for a cancelled
// one. The shipment starts IN_TRANSIT and the order moves to SHIPPED.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Shipment, error) {
	order, err := s.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderCancelled {
		return nil, domain.BadRequest("cancelled orders cannot be shipped")
	}
	exists, err := s.repo.ExistsForOrder(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.BadRequest("order already has a shipment")
	}

	created, err := s.repo.Create(ctx, shipmentrepo.CreateInput{
		OrderID:        in.OrderID,
		Carrier:        in.Carrier,
		TrackingNumber: in.TrackingNumber,
		LabelURL:       in.LabelURL,
	})
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"shipmentId": created.ID,
		"orderId":    in.OrderID,
	}).Info("shipment created")
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Shipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]domain.Shipment, error) {
	return s.repo.ListByOrder(ctx, orderID)
}

// UpdateStatus applies a carrier status update. DELIVERED shipments are
// immutable; the order status is synced in the same transaction.
func (s *Service) UpdateStatus(ctx context.Context, id int64, in UpdateStatusInput) (*domain.Shipment, error) {
	if !domain.ValidShipmentStatus(in.Status) {
		return nil, domain.BadRequest("invalid shipment status")
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.ShipmentDelivered {
		return nil, domain.BadRequest("delivered shipments cannot change status")
	}

	status := domain.ShipmentStatus(in.Status)
	var orderStatus *domain.OrderStatus
	if mapped := status.OrderStatusFor(); mapped != "" {
		orderStatus = &mapped
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, orderStatus)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"shipmentId": id,
		"status":     status,
	}).Info("shipment status updated")
	return updated, nil
}
