package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	addresssvc "shopmart-backend/internal/service/address"
)

func (h handlers) createAddress(c *gin.Context) {
	var in addresssvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := h.deps.Addresses.Create(c.Request.Context(), userIDFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "address created", created)
}

func (h handlers) listAddresses(c *gin.Context) {
	addresses, err := h.deps.Addresses.List(c.Request.Context(), userIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "addresses fetched", addresses)
}

func (h handlers) getAddress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	address, err := h.deps.Addresses.Get(c.Request.Context(), userIDFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "address fetched", address)
}

func (h handlers) updateAddress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var in addresssvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	updated, err := h.deps.Addresses.Update(c.Request.Context(), userIDFrom(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "address updated", updated)
}

func (h handlers) deleteAddress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.deps.Addresses.Delete(c.Request.Context(), userIDFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "address deleted", nil)
}
