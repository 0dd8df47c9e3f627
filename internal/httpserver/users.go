package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usersvc "shopmart-backend/internal/service/user"
)

func (h handlers) listUsers(c *gin.Context) {
	users, err := h.deps.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "users fetched", users)
}

func (h handlers) getUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.deps.Users.Get(c.Request.Context(), userIDFrom(c), rolesFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user fetched", user)
}

func (h handlers) updateUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var in usersvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, err)
		return
	}
	user, err := h.deps.Users.Update(c.Request.Context(), userIDFrom(c), rolesFrom(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user updated", user)
}

func (h handlers) deleteUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.deps.Users.Delete(c.Request.Context(), userIDFrom(c), rolesFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user deleted", nil)
}
