package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
)

type stubCartRepo struct {
	cart          *domain.Cart
	getErr        error
	addErr        error
	lastAddVar    int64
	lastAddQty    int
	lastAddPrice  decimal.Decimal
	updateErr     error
	lastUpdateQty int
	removeErr     error
	removeCalls   int
	clearErr      error
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubCartRepo) AddItem(_ context.Context, _, variantID int64, quantity int, unitPrice decimal.Decimal) error {
	s.lastAddVar = variantID
	s.lastAddQty = quantity
	s.lastAddPrice = unitPrice
	return s.addErr
}

func (s *stubCartRepo) UpdateItemQuantity(_ context.Context, _, _ int64, quantity int) error {
	s.lastUpdateQty = quantity
	return s.updateErr
}

func (s *stubCartRepo) RemoveItem(_ context.Context, _, _ int64) error {
	s.removeCalls++
	return s.removeErr
}

func (s *stubCartRepo) Clear(_ context.Context, _ int64) error { return s.clearErr }

type stubProductRepo struct {
	variant *domain.ProductVariant
	err     error
}

func (s *stubProductRepo) GetVariantByID(_ context.Context, _ int64) (*domain.ProductVariant, error) {
	return s.variant, s.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetReturnsEmptyCartForNewUser(t *testing.T) {
	svc := New(&stubCartRepo{getErr: domain.ErrNotFound}, &stubProductRepo{})
	view, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Items) != 0 || !view.Subtotal.IsZero() {
		t.Fatalf("expected empty cart, got %+v", view)
	}
}

func TestGetComputesSubtotal(t *testing.T) {
	cart := &domain.Cart{ID: 1, UserID: 7, Items: []domain.CartItem{
		{Price: dec("10.00"), Quantity: 2},
		{Price: dec("5.50"), Quantity: 1},
	}}
	svc := New(&stubCartRepo{cart: cart}, &stubProductRepo{})
	view, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.Subtotal.Equal(dec("25.50")) {
		t.Fatalf("subtotal = %s", view.Subtotal)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubProductRepo{})
	_, err := svc.AddItem(context.Background(), 7, AddItemInput{VariantID: 3, Quantity: 0})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestAddItemUnknownVariant(t *testing.T) {
	svc := New(&stubCartRepo{}, &stubProductRepo{err: domain.ErrNotFound})
	_, err := svc.AddItem(context.Background(), 7, AddItemInput{VariantID: 3, Quantity: 1})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestAddItemCapturesVariantPrice(t *testing.T) {
	repo := &stubCartRepo{cart: &domain.Cart{ID: 1, UserID: 7}}
	variant := &domain.ProductVariant{ID: 3, SKU: "SKU-1", Price: dec("19.99")}
	svc := New(repo, &stubProductRepo{variant: variant})
	if _, err := svc.AddItem(context.Background(), 7, AddItemInput{VariantID: 3, Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastAddVar != 3 || repo.lastAddQty != 2 || !repo.lastAddPrice.Equal(dec("19.99")) {
		t.Fatalf("add not called as expected: %d %d %s", repo.lastAddVar, repo.lastAddQty, repo.lastAddPrice)
	}
}

func TestUpdateItemZeroQuantityRemoves(t *testing.T) {
	repo := &stubCartRepo{cart: &domain.Cart{ID: 1, UserID: 7}}
	svc := New(repo, &stubProductRepo{})
	if _, err := svc.UpdateItem(context.Background(), 7, 11, UpdateItemInput{Quantity: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.removeCalls != 1 {
		t.Fatalf("expected removal, got %d calls", repo.removeCalls)
	}
}

func TestUpdateItemSetsQuantity(t *testing.T) {
	repo := &stubCartRepo{cart: &domain.Cart{ID: 1, UserID: 7}}
	svc := New(repo, &stubProductRepo{})
	if _, err := svc.UpdateItem(context.Background(), 7, 11, UpdateItemInput{Quantity: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpdateQty != 5 || repo.removeCalls != 0 {
		t.Fatalf("expected quantity update to 5, got %d (removes=%d)", repo.lastUpdateQty, repo.removeCalls)
	}
}

func TestRemoveItemPropagatesNotFound(t *testing.T) {
	svc := New(&stubCartRepo{removeErr: domain.ErrNotFound}, &stubProductRepo{})
	_, err := svc.RemoveItem(context.Background(), 7, 11)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
