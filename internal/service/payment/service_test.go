package payment

import (
	"context"
	"testing"

	"shopmart-backend/internal/domain"
)

type stubPaymentRepo struct {
	payment         *domain.Payment
	getErr          error
	lastID          int64
	lastStatus      domain.PaymentStatus
	lastOrderStatus *domain.OrderStatus
	updateErr       error
}

func (s *stubPaymentRepo) GetByID(_ context.Context, _ int64) (*domain.Payment, error) {
	return s.payment, s.getErr
}

func (s *stubPaymentRepo) GetByOrder(_ context.Context, _ int64) (*domain.Payment, error) {
	return s.payment, s.getErr
}

func (s *stubPaymentRepo) GetByOrderForUser(_ context.Context, _, _ int64) (*domain.Payment, error) {
	return s.payment, s.getErr
}

func (s *stubPaymentRepo) UpdateStatus(_ context.Context, id int64, status domain.PaymentStatus, orderStatus *domain.OrderStatus) (*domain.Payment, error) {
	s.lastID = id
	s.lastStatus = status
	s.lastOrderStatus = orderStatus
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	updated := *s.payment
	updated.Status = status
	return &updated, nil
}

type stubOrderRepo struct {
	order *domain.Order
	err   error
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.err
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := New(&stubPaymentRepo{}, &stubOrderRepo{}, nil)
	_, err := svc.UpdateStatusForOrder(context.Background(), 1, UpdateStatusInput{Status: "PAID"})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestSuccessOnPendingOrderAdvancesOrder(t *testing.T) {
	repo := &stubPaymentRepo{payment: &domain.Payment{ID: 5, OrderID: 9, Status: domain.PaymentPending}}
	orders := &stubOrderRepo{order: &domain.Order{ID: 9, Status: domain.OrderPending}}
	svc := New(repo, orders, nil)

	updated, err := svc.UpdateStatusForOrder(context.Background(), 9, UpdateStatusInput{Status: "SUCCESS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.PaymentSuccess {
		t.Fatalf("payment status = %s", updated.Status)
	}
	if repo.lastID != 5 {
		t.Fatalf("updated wrong payment: %d", repo.lastID)
	}
	if repo.lastOrderStatus == nil || *repo.lastOrderStatus != domain.OrderProcessing {
		t.Fatalf("order should advance to PROCESSING, got %v", repo.lastOrderStatus)
	}
}

func TestSuccessOnShippedOrderLeavesOrderAlone(t *testing.T) {
	repo := &stubPaymentRepo{payment: &domain.Payment{ID: 5, OrderID: 9, Status: domain.PaymentPending}}
	orders := &stubOrderRepo{order: &domain.Order{ID: 9, Status: domain.OrderShipped}}
	svc := New(repo, orders, nil)

	if _, err := svc.UpdateStatusForOrder(context.Background(), 9, UpdateStatusInput{Status: "SUCCESS"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastOrderStatus != nil {
		t.Fatalf("order status must not change, got %v", *repo.lastOrderStatus)
	}
}

func TestFailedPaymentLeavesOrderAlone(t *testing.T) {
	repo := &stubPaymentRepo{payment: &domain.Payment{ID: 5, OrderID: 9, Status: domain.PaymentPending}}
	orders := &stubOrderRepo{order: &domain.Order{ID: 9, Status: domain.OrderPending}}
	svc := New(repo, orders, nil)

	if _, err := svc.UpdateStatusForOrder(context.Background(), 9, UpdateStatusInput{Status: "FAILED"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastStatus != domain.PaymentFailed || repo.lastOrderStatus != nil {
		t.Fatalf("got status %s, order override %v", repo.lastStatus, repo.lastOrderStatus)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := New(&stubPaymentRepo{getErr: domain.ErrNotFound}, &stubOrderRepo{}, nil)
	_, err := svc.UpdateStatusForOrder(context.Background(), 404, UpdateStatusInput{Status: "SUCCESS"})
	if err == nil || domain.StatusOf(err) != 404 {
		t.Fatalf("expected not found, got %v", err)
	}
}
