package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/admin"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/token"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxAdminID = "adminID"
	CtxRole    = "adminRole"
	CtxEmail   = "adminEmail"
)

// Auth verifies the bearer access token and attaches the identity to the
// request context. The identity is re-loaded from the store on every
// request, so a deleted admin is rejected even with a valid token.
func Auth(tokens *token.Manager, admins admin.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Not authorized to access this route. No token provided.")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Not authorized to access this route. Invalid authorization header.")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Not authorized to access this route. Invalid token.")
			c.Abort()
			return
		}

		adminID, err := uuid.Parse(claims.AdminID)
		if err != nil {
			response.Unauthorized(c, "Not authorized to access this route. Invalid token.")
			c.Abort()
			return
		}

		identity, err := admins.GetByID(c.Request.Context(), adminID)
		if err != nil || identity == nil {
			response.Unauthorized(c, "Not authorized to access this route. Unknown identity.")
			c.Abort()
			return
		}

		c.Set(CtxAdminID, identity.ID)
		c.Set(CtxRole, identity.Role)
		c.Set(CtxEmail, identity.Email)

		c.Next()
	}
}

// AdminIDFromContext returns the authenticated admin id set by Auth.
func AdminIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(CtxAdminID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
