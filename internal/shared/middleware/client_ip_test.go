package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientIPStoredInRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var fromCtx string
	router.Use(ClientIP())
	router.GET("/", func(c *gin.Context) {
		// Services downstream read the IP without touching gin
		fromCtx = ClientIPFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.7")
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.7", fromCtx)
}

func TestClientIPFromContextMissing(t *testing.T) {
	assert.Equal(t, "", ClientIPFromContext(context.Background()))
}
