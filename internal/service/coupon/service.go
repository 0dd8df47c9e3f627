package coupon

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shopmart-backend/internal/domain"
)

type Service struct {
	repo couponRepo
}

type couponRepo interface {
	Create(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
}

func New(repo couponRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Code         string           `json:"code" binding:"required"`
	Type         string           `json:"type" binding:"required,oneof=FIXED PERCENT"`
	Value        decimal.Decimal  `json:"value" binding:"required"`
	MinCartValue *decimal.Decimal `json:"minCartValue"`
	StartsAt     *time.Time       `json:"startsAt"`
	EndsAt       *time.Time       `json:"endsAt"`
	UsageLimit   *int             `json:"usageLimit"`
	Active       *bool            `json:"active"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Coupon, error) {
	if in.Value.LessThanOrEqual(decimal.Zero) {
		return nil, domain.BadRequest("coupon value must be positive")
	}
	if in.StartsAt != nil && in.EndsAt != nil && in.EndsAt.Before(*in.StartsAt) {
		return nil, domain.BadRequest("coupon window ends before it starts")
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return s.repo.Create(ctx, domain.Coupon{
		Code:         strings.ToUpper(strings.TrimSpace(in.Code)),
		Type:         domain.CouponType(in.Type),
		Value:        in.Value,
		MinCartValue: in.MinCartValue,
		StartsAt:     in.StartsAt,
		EndsAt:       in.EndsAt,
		UsageLimit:   in.UsageLimit,
		Active:       active,
	})
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	return s.repo.GetActiveByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *Service) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.List(ctx)
}
