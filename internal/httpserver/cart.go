package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "shopmart-backend/internal/service/cart"
)

func (h handlers) getCart(c *gin.Context) {
	view, err := h.deps.Cart.Get(c.Request.Context(), userIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "cart fetched", view)
}

func (h handlers) addCartItem(c *gin.Context) {
	var in cartsvc.AddItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := h.deps.Cart.AddItem(c.Request.Context(), userIDFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "item added", view)
}

func (h handlers) updateCartItem(c *gin.Context) {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		respondError(c, err)
		return
	}
	var in cartsvc.UpdateItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := h.deps.Cart.UpdateItem(c.Request.Context(), userIDFrom(c), itemID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "cart updated", view)
}

func (h handlers) removeCartItem(c *gin.Context) {
	itemID, err := pathID(c, "itemId")
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.deps.Cart.RemoveItem(c.Request.Context(), userIDFrom(c), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "item removed", view)
}

func (h handlers) clearCart(c *gin.Context) {
	if err := h.deps.Cart.Clear(c.Request.Context(), userIDFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "cart cleared", nil)
}
