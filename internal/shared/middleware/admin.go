package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
)

// AdminOnly gates a route group on the admin role. Must run after Auth,
// which attaches the role to the context.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Forbidden(c, "Access denied. Admin privileges required.")
			c.Abort()
			return
		}

		if r, ok := role.(string); !ok || r != "admin" {
			response.Forbidden(c, "Access denied. Admin privileges required.")
			c.Abort()
			return
		}

		c.Next()
	}
}
