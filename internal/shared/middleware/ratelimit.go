package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/logger"
)

// WindowStore counts hits per key inside a fixed window. The Redis client
// satisfies this directly; MemoryWindowStore is the single-instance
// fallback.
type WindowStore interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit throttles a route group to cfg.Limit requests per cfg.Period
// per client IP. On store failure the request is allowed through; the
// limiter must not take the API down with it.
func RateLimit(name string, store WindowStore, cfg config.Window, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.GetString("client_ip")
		if ip == "" {
			ip = utils.ExtractClientIP(c)
		}

		key := fmt.Sprintf("ratelimit:%s:ip:%s", name, ip)

		count, err := store.IncrWindow(c.Request.Context(), key, cfg.Period)
		if err != nil {
			logger.Error("Rate limit check failed", err)
			c.Next()
			return
		}

		remaining := int64(cfg.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Limit) {
			logger.Warn("Rate limit exceeded", map[string]interface{}{
				"limiter": name,
				"ip":      ip,
				"count":   count,
			})
			response.TooManyRequests(c, message)
			c.Abort()
			return
		}

		c.Next()
	}
}

// MemoryWindowStore keeps fixed-window counters in process memory.
// Counters are not shared across instances; Redis is the store for
// multi-instance deployments.
type MemoryWindowStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
}

type memoryWindow struct {
	count     int64
	expiresAt time.Time
}

func NewMemoryWindowStore() *MemoryWindowStore {
	return &MemoryWindowStore{
		windows: make(map[string]*memoryWindow),
		now:     time.Now,
	}
}

func (s *MemoryWindowStore) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	w, ok := s.windows[key]
	if !ok || now.After(w.expiresAt) {
		w = &memoryWindow{expiresAt: now.Add(window)}
		s.windows[key] = w
	}

	w.count++
	return w.count, nil
}
