package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	shipmentsvc "shopmart-backend/internal/service/shipment"
)

func (h handlers) createShipment(c *gin.Context) {
	var in shipmentsvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := h.deps.Shipment.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "shipment created", created)
}

func (h handlers) getShipment(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	shipment, err := h.deps.Shipment.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "shipment fetched", shipment)
}

func (h handlers) listShipmentsByOrder(c *gin.Context) {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		respondError(c, err)
		return
	}
	shipments, err := h.deps.Shipment.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "shipments fetched", shipments)
}

func (h handlers) updateShipmentStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var in shipmentsvc.UpdateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := h.deps.Shipment.UpdateStatus(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "shipment status updated", updated)
}
