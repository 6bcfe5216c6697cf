package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/admin"
	"portfolio-backend/pkg/token"
)

type stubAdminRepo struct {
	admin *admin.Admin
}

func (r *stubAdminRepo) CreateIfNone(ctx context.Context, a *admin.Admin) error { return nil }

func (r *stubAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	if r.admin != nil && r.admin.ID == id {
		return r.admin, nil
	}
	return nil, nil
}

func (r *stubAdminRepo) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	if r.admin != nil && r.admin.Email == email {
		return r.admin, nil
	}
	return nil, nil
}

func (r *stubAdminRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken *string) error {
	return nil
}

func newAuthTestRouter(tokens *token.Manager, repo admin.Repository, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{Auth(tokens, repo)}
	if adminOnly {
		handlers = append(handlers, AdminOnly())
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := AdminIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"adminID": id.String()})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthAcceptsValidToken(t *testing.T) {
	tokens := token.NewManager("access", "refresh", 30*time.Minute, time.Hour)
	stored := &admin.Admin{ID: uuid.New(), Email: "admin@example.com", Role: admin.RoleAdmin}
	router := newAuthTestRouter(tokens, &stubAdminRepo{admin: stored}, false)

	accessToken, err := tokens.GenerateAccessToken(stored.ID, stored.Email, stored.Role)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), stored.ID.String())
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	tokens := token.NewManager("access", "refresh", 30*time.Minute, time.Hour)
	router := newAuthTestRouter(tokens, &stubAdminRepo{}, false)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRejectsRefreshTokenOnAccessRoute(t *testing.T) {
	tokens := token.NewManager("access", "refresh", 30*time.Minute, time.Hour)
	stored := &admin.Admin{ID: uuid.New(), Email: "admin@example.com", Role: admin.RoleAdmin}
	router := newAuthTestRouter(tokens, &stubAdminRepo{admin: stored}, false)

	refreshToken, err := tokens.GenerateRefreshToken(stored.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsDeletedAdmin(t *testing.T) {
	tokens := token.NewManager("access", "refresh", 30*time.Minute, time.Hour)
	router := newAuthTestRouter(tokens, &stubAdminRepo{}, false)

	// Token is valid but the identity no longer exists in the store
	accessToken, err := tokens.GenerateAccessToken(uuid.New(), "gone@example.com", admin.RoleAdmin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyRejectsNonAdminRole(t *testing.T) {
	tokens := token.NewManager("access", "refresh", 30*time.Minute, time.Hour)
	stored := &admin.Admin{ID: uuid.New(), Email: "viewer@example.com", Role: "viewer"}
	router := newAuthTestRouter(tokens, &stubAdminRepo{admin: stored}, true)

	accessToken, err := tokens.GenerateAccessToken(stored.ID, stored.Email, stored.Role)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
