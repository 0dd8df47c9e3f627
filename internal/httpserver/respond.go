package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopmart-backend/internal/domain"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

// respondError maps the error onto an HTTP status via domain.StatusOf.
// Internal errors never leak their message to the client.
func respondError(c *gin.Context, err error) {
	status := domain.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, envelope{Success: false, Message: message})
}

func respondBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
}
