package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	paymentsvc "shopmart-backend/internal/service/payment"
)

func (h handlers) getPayment(c *gin.Context) {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		respondError(c, err)
		return
	}
	payment, err := h.deps.Payment.GetForOrder(c.Request.Context(), userIDFrom(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "payment fetched", payment)
}

func (h handlers) updatePaymentStatus(c *gin.Context) {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		respondError(c, err)
		return
	}
	var in paymentsvc.UpdateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	payment, err := h.deps.Payment.UpdateStatusForOrder(c.Request.Context(), orderID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "payment status updated", payment)
}
