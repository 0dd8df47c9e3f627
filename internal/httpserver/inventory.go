package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	inventorysvc "shopmart-backend/internal/service/inventory"
)

func (h handlers) listInventory(c *gin.Context) {
	stocks, err := h.deps.Inventory.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "inventory fetched", stocks)
}

func (h handlers) getInventory(c *gin.Context) {
	variantID, err := pathID(c, "variantId")
	if err != nil {
		respondError(c, err)
		return
	}
	withMovements := c.Query("withMovements") == "true"
	view, err := h.deps.Inventory.Get(c.Request.Context(), variantID, withMovements)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "inventory fetched", view)
}

func (h handlers) listMovements(c *gin.Context) {
	variantID, err := pathID(c, "variantId")
	if err != nil {
		respondError(c, err)
		return
	}
	movements, err := h.deps.Inventory.ListMovements(c.Request.Context(), variantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "movements fetched", movements)
}

func (h handlers) adjustInventory(c *gin.Context) {
	variantID, err := pathID(c, "variantId")
	if err != nil {
		respondError(c, err)
		return
	}
	var in inventorysvc.AdjustInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	inv, err := h.deps.Inventory.Adjust(c.Request.Context(), userIDFrom(c), variantID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "inventory adjusted", inv)
}
