package shipment

import (
	"context"
	"testing"

	"shopmart-backend/internal/domain"
	shipmentrepo "shopmart-backend/internal/repository/shipment"
)

type stubShipmentRepo struct {
	shipment        *domain.Shipment
	getErr          error
	exists          bool
	created         *shipmentrepo.CreateInput
	lastStatus      domain.ShipmentStatus
	lastOrderStatus *domain.OrderStatus
}

func (s *stubShipmentRepo) Create(_ context.Context, in shipmentrepo.CreateInput) (*domain.Shipment, error) {
	s.created = &in
	return &domain.Shipment{ID: 1, OrderID: in.OrderID, Status: domain.ShipmentInTransit}, nil
}

func (s *stubShipmentRepo) GetByID(_ context.Context, _ int64) (*domain.Shipment, error) {
	return s.shipment, s.getErr
}

func (s *stubShipmentRepo) ExistsForOrder(_ context.Context, _ int64) (bool, error) {
	return s.exists, nil
}

func (s *stubShipmentRepo) ListByOrder(_ context.Context, _ int64) ([]domain.Shipment, error) {
	return nil, nil
}

func (s *stubShipmentRepo) UpdateStatus(_ context.Context, id int64, status domain.ShipmentStatus, orderStatus *domain.OrderStatus) (*domain.Shipment, error) {
	s.lastStatus = status
	s.lastOrderStatus = orderStatus
	updated := *s.shipment
	updated.ID = id
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

func TestCreateRejectsCancelledOrder(t *testing.T) {
	orders := &stubOrderRepo{order: &domain.Order{ID: 9, Status: domain.OrderCancelled}}
	svc := New(&stubShipmentRepo{}, orders, nil)
	_, err := svc.Create(context.Background(), CreateInput{OrderID: 9})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestCreateRejectsSecondShipment(t *testing.T) {
	orders := &stubOrderRepo{order: &domain.Order{ID: 9, Status: domain.OrderProcessing}}
	svc := New(&stubShipmentRepo{exists: true}, orders, nil)
	_, err := svc.Create(context.Background(), CreateInput{OrderID: 9})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestCreateUnknownOrder(t *testing.T) {
	svc := New(&stubShipmentRepo{}, &stubOrderRepo{err: domain.ErrNotFound}, nil)
	_, err := svc.Create(context.Background(), CreateInput{OrderID: 404})
	if err == nil || domain.StatusOf(err) != 404 {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateStartsInTransit(t *testing.T) {
	repo := &stubShipmentRepo{}
	orders := &stubOrderRepo{order: &domain.Order{ID: 9, Status: domain.OrderProcessing}}
	svc := New(repo, orders, nil)

	created, err := svc.Create(context.Background(), CreateInput{OrderID: 9, Carrier: "DHL", TrackingNumber: "TRK-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.ShipmentInTransit {
		t.Fatalf("status = %s", created.Status)
	}
	if repo.created == nil || repo.created.Carrier != "DHL" || repo.created.TrackingNumber != "TRK-1" {
		t.Fatalf("create input = %+v", repo.created)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := New(&stubShipmentRepo{}, &stubOrderRepo{}, nil)
	_, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusInput{Status: "TELEPORTED"})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestDeliveredShipmentIsImmutable(t *testing.T) {
	repo := &stubShipmentRepo{shipment: &domain.Shipment{ID: 1, Status: domain.ShipmentDelivered}}
	svc := New(repo, &stubOrderRepo{}, nil)
	_, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusInput{Status: "RETURNED"})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestDeliveryAdvancesOrder(t *testing.T) {
	repo := &stubShipmentRepo{shipment: &domain.Shipment{ID: 1, OrderID: 9, Status: domain.ShipmentInTransit}}
	svc := New(repo, &stubOrderRepo{}, nil)

	updated, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusInput{Status: "DELIVERED"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.ShipmentDelivered {
		t.Fatalf("status = %s", updated.Status)
	}
	if repo.lastOrderStatus == nil || *repo.lastOrderStatus != domain.OrderDelivered {
		t.Fatalf("order should sync to DELIVERED, got %v", repo.lastOrderStatus)
	}
}

func TestPendingStatusDoesNotTouchOrder(t *testing.T) {
	repo := &stubShipmentRepo{shipment: &domain.Shipment{ID: 1, OrderID: 9, Status: domain.ShipmentInTransit}}
	svc := New(repo, &stubOrderRepo{}, nil)

	if _, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusInput{Status: "FAILED"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastOrderStatus != nil {
		t.Fatalf("order status must not change, got %v", *repo.lastOrderStatus)
	}
}
