package payment

import (
	"context"

	"github.com/sirupsen/logrus"

	"shopmart-backend/internal/domain"
)

type Service struct {
	repo   paymentRepo
	orders orderRepo
	logger *logrus.Logger
}

type paymentRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByOrder(ctx context.Context, orderID int64) (*domain.Payment, error)
	GetByOrderForUser(ctx context.Context, userID, orderID int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, orderStatus *domain.OrderStatus) (*domain.Payment, error)
}

type orderRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

func New(repo paymentRepo, orders orderRepo, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{repo: repo, orders: orders, logger: logger}
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,paymentstatus"`
}

// GetForOrder returns the payment for one of the user's orders.
func (s *Service) GetForOrder(ctx context.Context, userID, orderID int64) (*domain.Payment, error) {
	return s.repo.GetByOrderForUser(ctx, userID, orderID)
}

// UpdateStatusForOrder is the administrative payment-status override,
// addressed by order. The order's payment_status mirrors the payment, and a
// SUCCESS on a still-PENDING order advances the order to PROCESSING.
func (s *Service) UpdateStatusForOrder(ctx context.Context, orderID int64, in UpdateStatusInput) (*domain.Payment, error) {
	if !domain.ValidPaymentStatus(in.Status) {
		return nil, domain.BadRequest("invalid payment status")
	}
	p, err := s.repo.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.GetByID(ctx, p.OrderID)
	if err != nil {
		return nil, err
	}

	status := domain.PaymentStatus(in.Status)
	var orderStatus *domain.OrderStatus
	if status == domain.PaymentSuccess && order.Status == domain.OrderPending {
		processing := domain.OrderProcessing
		orderStatus = &processing
	}

	updated, err := s.repo.UpdateStatus(ctx, p.ID, status, orderStatus)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"paymentId": p.ID,
		"orderId":   p.OrderID,
		"status":    status,
	}).Info("payment status updated")
	return updated, nil
}
