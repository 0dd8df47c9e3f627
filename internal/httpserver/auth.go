package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authsvc "shopmart-backend/internal/service/auth"
)

func (h handlers) signup(c *gin.Context) {
	var in authsvc.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	pair, err := h.deps.Auth.Signup(c.Request.Context(), in, clientMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "account created", pair)
}

func (h handlers) login(c *gin.Context) {
	var in authsvc.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	pair, err := h.deps.Auth.Login(c.Request.Context(), in, clientMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "logged in", pair)
}

func (h handlers) refreshToken(c *gin.Context) {
	var in authsvc.RefreshInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	pair, err := h.deps.Auth.Refresh(c.Request.Context(), in, clientMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "token refreshed", pair)
}

func clientMeta(c *gin.Context) authsvc.ClientMeta {
	return authsvc.ClientMeta{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
