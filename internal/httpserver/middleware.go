package httpserver

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shopmart-backend/internal/domain"
	authsvc "shopmart-backend/internal/service/auth"
)

const (
	ctxUserID = "userId"
	ctxRoles  = "roles"
)

// authenticate validates the bearer token and stores the caller's identity
// on the context.
func authenticate(auth authVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(c, domain.Unauthorized("missing bearer token"))
			return
		}
		claims, err := auth.VerifyAccessToken(token)
		if err != nil {
			respondError(c, err)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			respondError(c, domain.Unauthorized("invalid token subject"))
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxRoles, claims.Roles)
		c.Next()
	}
}

type authVerifier interface {
	VerifyAccessToken(token string) (*authsvc.Claims, error)
}

// requireRoles rejects callers holding none of the allowed roles. It must
// run after authenticate.
func requireRoles(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !domain.HasAnyRole(rolesFrom(c), allowed...) {
			respondError(c, domain.Forbidden("insufficient permissions"))
			return
		}
		c.Next()
	}
}

func userIDFrom(c *gin.Context) int64 {
	v, _ := c.Get(ctxUserID)
	id, _ := v.(int64)
	return id
}

func rolesFrom(c *gin.Context) []string {
	v, _ := c.Get(ctxRoles)
	roles, _ := v.([]string)
	return roles
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.BadRequest("invalid " + name)
	}
	return id, nil
}
