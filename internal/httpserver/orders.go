package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopmart-backend/internal/domain"
	ordersvc "shopmart-backend/internal/service/order"
)

func (h handlers) checkoutSummary(c *gin.Context) {
	var in ordersvc.CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	summary, err := h.deps.Order.Summarize(c.Request.Context(), userIDFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "checkout summary", summary)
}

func (h handlers) checkout(c *gin.Context) {
	var in ordersvc.CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := h.deps.Order.Checkout(c.Request.Context(), userIDFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "order placed", order)
}

func (h handlers) listMyOrders(c *gin.Context) {
	orders, err := h.deps.Order.ListMine(c.Request.Context(), userIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "orders fetched", orders)
}

func (h handlers) listAllOrders(c *gin.Context) {
	orders, err := h.deps.Order.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "orders fetched", orders)
}

// getOrder returns the caller's own order; admins can read any order.
func (h handlers) getOrder(c *gin.Context) {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		respondError(c, err)
		return
	}
	var order *domain.Order
	if domain.HasAnyRole(rolesFrom(c), domain.AdminRoles...) {
		order, err = h.deps.Order.GetAny(c.Request.Context(), orderID)
	} else {
		order, err = h.deps.Order.Get(c.Request.Context(), userIDFrom(c), orderID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "order fetched", order)
}

func (h handlers) updateOrderStatus(c *gin.Context) {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		respondError(c, err)
		return
	}
	var in struct {
		Status string `json:"status" binding:"required,orderstatus"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := h.deps.Order.UpdateStatus(c.Request.Context(), orderID, in.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "order status updated", order)
}
