package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"shopmart-backend/internal/domain"
	orderrepo "shopmart-backend/internal/repository/order"
	"shopmart-backend/internal/service/pricing"
)

type Service struct {
	orders  orderRepo
	carts   cartRepo
	addrs   addressRepo
	coupons couponRepo
	calc    *pricing.Calculator
	logger  *logrus.Logger
}

type orderRepo interface {
	Checkout(ctx context.Context, in orderrepo.CheckoutInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByIDForUser(ctx context.Context, userID, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Cart, error)
}

type addressRepo interface {
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Address, error)
}

type couponRepo interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

func New(orders orderRepo, carts cartRepo, addrs addressRepo, coupons couponRepo, calc *pricing.Calculator, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{orders: orders, carts: carts, addrs: addrs, coupons: coupons, calc: calc, logger: logger}
}

type CheckoutInput struct {
	AddressID     int64  `json:"addressId" binding:"required"`
	CouponCode    string `json:"couponCode"`
	PaymentMethod string `json:"paymentMethod"`
}

// SummaryView is the checkout preview returned before the order is placed.
type SummaryView struct {
	Items []domain.CartItem `json:"items"`
	pricing.Summary
	AppliedCoupon *domain.Coupon `json:"appliedCoupon,omitempty"`
}

// Summarize prices the user's cart against an address and optional coupon
// without writing anything.
func (s *Service) Summarize(ctx context.Context, userID int64, in CheckoutInput) (*SummaryView, error) {
	cart, address, coupon, err := s.resolve(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	summary, err := s.calc.Summarize(cart.Items, address.City, coupon, time.Now())
	if err != nil {
		return nil, err
	}
	return &SummaryView{Items: cart.Items, Summary: *summary, AppliedCoupon: coupon}, nil
}

// Checkout recomputes totals server-side and commits the cart as an order.
func (s *Service) Checkout(ctx context.Context, userID int64, in CheckoutInput) (*domain.Order, error) {
	cart, address, coupon, err := s.resolve(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	summary, err := s.calc.Summarize(cart.Items, address.City, coupon, time.Now())
	if err != nil {
		return nil, err
	}

	method := domain.PaymentMethod(in.PaymentMethod)
	if in.PaymentMethod == "" {
		method = domain.PaymentMethodCOD
	} else if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.BadRequest("invalid payment method")
	}

	// The recipient snapshot prefers the address label over its first line.
	shipToName := address.Label
	if shipToName == "" {
		shipToName = address.Line1
	}

	return s.orders.Checkout(ctx, orderrepo.CheckoutInput{
		UserID:         userID,
		ShipToName:     shipToName,
		Address:        *address,
		Items:          cart.Items,
		Coupon:         coupon,
		Subtotal:       summary.Subtotal,
		ShippingAmount: summary.ShippingAmount,
		TaxAmount:      summary.TaxAmount,
		DiscountAmount: summary.DiscountAmount,
		TotalAmount:    summary.TotalAmount,
		PaymentMethod:  method,
	})
}

func (s *Service) resolve(ctx context.Context, userID int64, in CheckoutInput) (*domain.Cart, *domain.Address, *domain.Coupon, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, nil, domain.BadRequest("cart is empty")
		}
		return nil, nil, nil, err
	}
	if len(cart.Items) == 0 {
		return nil, nil, nil, domain.BadRequest("cart is empty")
	}

	address, err := s.addrs.GetByIDForUser(ctx, in.AddressID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, nil, domain.NotFound("address not found")
		}
		return nil, nil, nil, err
	}

	var coupon *domain.Coupon
	if code := strings.ToUpper(strings.TrimSpace(in.CouponCode)); code != "" {
		coupon, err = s.coupons.GetActiveByCode(ctx, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, nil, nil, domain.BadRequest("invalid coupon")
			}
			return nil, nil, nil, err
		}
	}
	return cart, address, coupon, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Order, error) {
	return s.orders.GetByIDForUser(ctx, userID, id)
}

// GetAny skips the ownership check; for admin callers.
func (s *Service) GetAny(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus is the administrative status override. The only hard rule is
// that DELIVERED orders never change again.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.BadRequest("invalid order status")
	}
	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := domain.OrderStatus(status)
	if !current.Status.CanTransitionTo(next) {
		return nil, domain.BadRequest("delivered orders cannot change status")
	}
	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"orderId": id,
		"from":    current.Status,
		"to":      next,
	}).Info("order status updated")
	return updated, nil
}
