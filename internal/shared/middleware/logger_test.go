package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLoggerUsesResolvedClientIP(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ClientIP(), Logger())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping?verbose=1", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.9")
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	// The forwarded address wins over the proxy's RemoteAddr
	assert.Contains(t, out, `"client_ip":"198.51.100.9"`)
	assert.Contains(t, out, `"path":"/ping?verbose=1"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"method":"GET"`)
}
