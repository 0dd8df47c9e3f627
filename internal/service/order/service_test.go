package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
	orderrepo "shopmart-backend/internal/repository/order"
	"shopmart-backend/internal/service/pricing"
)

type stubOrderRepo struct {
	checkoutCalls int
	lastCheckout  orderrepo.CheckoutInput
	checkoutOrder *domain.Order
	checkoutErr   error
	getOrder      *domain.Order
	getErr        error
	updatedOrder  *domain.Order
	updateErr     error
	lastStatus    domain.OrderStatus
}

func (s *stubOrderRepo) Checkout(_ context.Context, in orderrepo.CheckoutInput) (*domain.Order, error) {
	s.checkoutCalls++
	s.lastCheckout = in
	return s.checkoutOrder, s.checkoutErr
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubOrderRepo) GetByIDForUser(_ context.Context, _, _ int64) (*domain.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ int64) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _ int64, status domain.OrderStatus) (*domain.Order, error) {
	s.lastStatus = status
	return s.updatedOrder, s.updateErr
}

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ int64) (*domain.Cart, error) {
	return s.cart, s.err
}

type stubAddressRepo struct {
	address *domain.Address
	err     error
}

func (s *stubAddressRepo) GetByIDForUser(_ context.Context, _, _ int64) (*domain.Address, error) {
	return s.address, s.err
}

type stubCouponRepo struct {
	coupon   *domain.Coupon
	err      error
	lastCode string
}

func (s *stubCouponRepo) GetActiveByCode(_ context.Context, code string) (*domain.Coupon, error) {
	s.lastCode = code
	return s.coupon, s.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCalculator() *pricing.Calculator {
	return pricing.NewCalculator("dhaka", decimal.NewFromInt(60), decimal.NewFromInt(120), decimal.Zero)
}

func newService(orders *stubOrderRepo, carts *stubCartRepo, addrs *stubAddressRepo, coupons *stubCouponRepo) *Service {
	return New(orders, carts, addrs, coupons, testCalculator(), nil)
}

func filledCart() *domain.Cart {
	return &domain.Cart{
		ID:     1,
		UserID: 7,
		Items: []domain.CartItem{
			{ID: 11, VariantID: 3, SKU: "TSHIRT-M", ProductTitle: "Tee", Quantity: 4, Price: dec("10.00")},
		},
	}
}

func dhakaAddress() *domain.Address {
	return &domain.Address{ID: 5, UserID: 7, Line1: "House 1", City: "Dhaka", PostalCode: "1207", Country: "BD"}
}

func TestCheckoutEmptyCart(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubCartRepo{err: domain.ErrNotFound}, &stubAddressRepo{}, &stubCouponRepo{})
	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 5})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
	if orders.checkoutCalls != 0 {
		t.Fatalf("checkout must not run for an empty cart")
	}

	svc = newService(orders, &stubCartRepo{cart: &domain.Cart{ID: 1, UserID: 7}}, &stubAddressRepo{}, &stubCouponRepo{})
	_, err = svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 5})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request for zero items, got %v", err)
	}
	if orders.checkoutCalls != 0 {
		t.Fatalf("checkout must not run for an empty cart")
	}
}

func TestCheckoutUnknownAddress(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubCartRepo{cart: filledCart()}, &stubAddressRepo{err: domain.ErrNotFound}, &stubCouponRepo{})
	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 99})
	if err == nil || domain.StatusOf(err) != 404 {
		t.Fatalf("expected not found, got %v", err)
	}
	if orders.checkoutCalls != 0 {
		t.Fatalf("checkout must not run without a valid address")
	}
}

func TestCheckoutUnknownCoupon(t *testing.T) {
	orders := &stubOrderRepo{}
	coupons := &stubCouponRepo{err: domain.ErrNotFound}
	svc := newService(orders, &stubCartRepo{cart: filledCart()}, &stubAddressRepo{address: dhakaAddress()}, coupons)
	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 5, CouponCode: "nope"})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
	if coupons.lastCode != "NOPE" {
		t.Fatalf("coupon code not normalized: %q", coupons.lastCode)
	}
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	svc := newService(&stubOrderRepo{}, &stubCartRepo{cart: filledCart()}, &stubAddressRepo{address: dhakaAddress()}, &stubCouponRepo{})
	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 5, PaymentMethod: "CHEQUE"})
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestCheckoutComputesAmountsServerSide(t *testing.T) {
	placed := &domain.Order{ID: 42, OrderNumber: "ORD-20250101-000001"}
	orders := &stubOrderRepo{checkoutOrder: placed}
	min := dec("30")
	coupons := &stubCouponRepo{coupon: &domain.Coupon{
		ID: 2, Code: "SAVE10", Type: domain.CouponPercent, Value: dec("10"),
		MinCartValue: &min, Active: true,
	}}
	svc := newService(orders, &stubCartRepo{cart: filledCart()}, &stubAddressRepo{address: dhakaAddress()}, coupons)

	got, err := svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 5, CouponCode: "SAVE10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != placed {
		t.Fatalf("unexpected order: %+v", got)
	}

	in := orders.lastCheckout
	if !in.Subtotal.Equal(dec("40.00")) {
		t.Fatalf("subtotal = %s", in.Subtotal)
	}
	if !in.ShippingAmount.Equal(dec("60")) {
		t.Fatalf("shipping = %s", in.ShippingAmount)
	}
	if !in.DiscountAmount.Equal(dec("4.00")) {
		t.Fatalf("discount = %s", in.DiscountAmount)
	}
	if !in.TotalAmount.Equal(dec("96.00")) {
		t.Fatalf("total = %s", in.TotalAmount)
	}
	if in.PaymentMethod != domain.PaymentMethodCOD {
		t.Fatalf("payment method defaulted to %s", in.PaymentMethod)
	}
	if in.ShipToName != "House 1" {
		t.Fatalf("ship-to name = %q", in.ShipToName)
	}
	if in.Coupon == nil || in.Coupon.ID != 2 {
		t.Fatalf("coupon not forwarded: %+v", in.Coupon)
	}
}

func TestCheckoutShipToNamePrefersLabel(t *testing.T) {
	orders := &stubOrderRepo{checkoutOrder: &domain.Order{ID: 43}}
	labelled := dhakaAddress()
	labelled.Label = "Home"
	svc := newService(orders, &stubCartRepo{cart: filledCart()}, &stubAddressRepo{address: labelled}, &stubCouponRepo{})

	if _, err := svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.lastCheckout.ShipToName != "Home" {
		t.Fatalf("ship-to name = %q", orders.lastCheckout.ShipToName)
	}
}

func TestSummarizeDoesNotCommit(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := newService(orders, &stubCartRepo{cart: filledCart()}, &stubAddressRepo{address: dhakaAddress()}, &stubCouponRepo{})
	view, err := svc.Summarize(context.Background(), 7, CheckoutInput{AddressID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.TotalAmount.Equal(dec("100.00")) {
		t.Fatalf("total = %s", view.TotalAmount)
	}
	if orders.checkoutCalls != 0 {
		t.Fatalf("summary must not write")
	}
}

func TestUpdateStatusInvalidEnum(t *testing.T) {
	svc := newService(&stubOrderRepo{}, &stubCartRepo{}, &stubAddressRepo{}, &stubCouponRepo{})
	_, err := svc.UpdateStatus(context.Background(), 1, "SOMEWHERE")
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestUpdateStatusDeliveredIsTerminal(t *testing.T) {
	orders := &stubOrderRepo{getOrder: &domain.Order{ID: 1, Status: domain.OrderDelivered}}
	svc := newService(orders, &stubCartRepo{}, &stubAddressRepo{}, &stubCouponRepo{})
	_, err := svc.UpdateStatus(context.Background(), 1, string(domain.OrderCancelled))
	if err == nil || domain.StatusOf(err) != 400 {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestUpdateStatusHappyPath(t *testing.T) {
	updated := &domain.Order{ID: 1, Status: domain.OrderShipped}
	orders := &stubOrderRepo{
		getOrder:     &domain.Order{ID: 1, Status: domain.OrderProcessing},
		updatedOrder: updated,
	}
	svc := newService(orders, &stubCartRepo{}, &stubAddressRepo{}, &stubCouponRepo{})
	got, err := svc.UpdateStatus(context.Background(), 1, string(domain.OrderShipped))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != updated || orders.lastStatus != domain.OrderShipped {
		t.Fatalf("unexpected update: %+v status=%s", got, orders.lastStatus)
	}
}

func TestCheckoutPropagatesRepoError(t *testing.T) {
	orders := &stubOrderRepo{checkoutErr: errors.New("insufficient stock for SKU TSHIRT-M")}
	svc := newService(orders, &stubCartRepo{cart: filledCart()}, &stubAddressRepo{address: dhakaAddress()}, &stubCouponRepo{})
	_, err := svc.Checkout(context.Background(), 7, CheckoutInput{AddressID: 5})
	if err == nil || err.Error() != "insufficient stock for SKU TSHIRT-M" {
		t.Fatalf("expected repo error, got %v", err)
	}
}
