package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/utils"
)

type clientIPKey struct{}

// ClientIP extracts the client IP address and injects it into both the
// gin context and the request context, so services persisting the IP
// (contact messages, AI usage logs) can read it without gin.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := utils.ExtractClientIP(c)

		c.Set("client_ip", ip)

		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, ip)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ClientIPFromContext retrieves the client IP stored by ClientIP.
// Returns empty string if not found.
func ClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
