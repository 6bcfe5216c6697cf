package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/config"
)

func TestMemoryWindowStoreCounts(t *testing.T) {
	store := NewMemoryWindowStore()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, err := store.IncrWindow(ctx, "key", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	// Separate keys get separate windows
	count, err := store.IncrWindow(ctx, "other", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryWindowStoreResetsAfterWindow(t *testing.T) {
	store := NewMemoryWindowStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.IncrWindow(ctx, "key", time.Minute)
	require.NoError(t, err)
	count, err := store.IncrWindow(ctx, "key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Advance past the window; the counter starts over
	now = now.Add(2 * time.Minute)
	count, err = store.IncrWindow(ctx, "key", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func newRateLimitedRouter(store WindowStore, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ClientIP())
	router.Use(RateLimit("test", store, config.Window{Limit: limit, Period: time.Minute},
		"Too many requests"))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	store := NewMemoryWindowStore()
	router := newRateLimitedRouter(store, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))
}

func TestRateLimitIsPerClientIP(t *testing.T) {
	store := NewMemoryWindowStore()
	router := newRateLimitedRouter(store, 1)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	blocked := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(blocked, req)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	// A different client is unaffected
	other := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimitRecoversAfterWindow(t *testing.T) {
	store := NewMemoryWindowStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	router := newRateLimitedRouter(store, 1)

	ok := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(ok, req)
	assert.Equal(t, http.StatusOK, ok.Code)

	blocked := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(blocked, req)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	now = now.Add(2 * time.Minute)

	recovered := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(recovered, req)
	assert.Equal(t, http.StatusOK, recovered.Code)
}
