package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	couponsvc "shopmart-backend/internal/service/coupon"
)

func (h handlers) createCoupon(c *gin.Context) {
	var in couponsvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := h.deps.Coupon.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "coupon created", created)
}

func (h handlers) listCoupons(c *gin.Context) {
	coupons, err := h.deps.Coupon.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "coupons fetched", coupons)
}
