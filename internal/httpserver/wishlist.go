package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	wishlistsvc "shopmart-backend/internal/service/wishlist"
)

func (h handlers) getWishlist(c *gin.Context) {
	w, err := h.deps.Wishlist.Get(c.Request.Context(), userIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "wishlist fetched", w)
}

func (h handlers) addWishlistItem(c *gin.Context) {
	var in wishlistsvc.AddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	w, err := h.deps.Wishlist.Add(c.Request.Context(), userIDFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "product added to wishlist", w)
}

func (h handlers) removeWishlistItem(c *gin.Context) {
	productID, err := pathID(c, "productId")
	if err != nil {
		respondError(c, err)
		return
	}
	w, err := h.deps.Wishlist.Remove(c.Request.Context(), userIDFrom(c), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "product removed from wishlist", w)
}
