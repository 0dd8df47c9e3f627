package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponType string

const (
	CouponFixed   CouponType = "FIXED"
	CouponPercent CouponType = "PERCENT"
)

type Coupon struct {
	ID           int64            `json:"id"`
	Code         string           `json:"code"`
	Type         CouponType       `json:"type"`
	Value        decimal.Decimal  `json:"value"`
	MinCartValue *decimal.Decimal `json:"minCartValue,omitempty"`
	StartsAt     *time.Time       `json:"startsAt,omitempty"`
	EndsAt       *time.Time       `json:"endsAt,omitempty"`
	UsageLimit   *int             `json:"usageLimit,omitempty"`
	UsedCount    int              `json:"usedCount"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"createdAt"`
}
