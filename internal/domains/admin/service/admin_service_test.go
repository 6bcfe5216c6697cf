package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/admin"
	"portfolio-backend/pkg/token"
)

// fakeAdminRepo mimics the store's single-admin guard in memory.
type fakeAdminRepo struct {
	mu    sync.Mutex
	admin *admin.Admin
}

func (r *fakeAdminRepo) CreateIfNone(ctx context.Context, a *admin.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.admin != nil {
		if r.admin.Email == a.Email {
			return admin.ErrEmailExists
		}
		return admin.ErrAdminExists
	}
	stored := *a
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.admin = &stored
	return nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.admin != nil && r.admin.ID == id {
		copied := *r.admin
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.admin != nil && r.admin.Email == email {
		copied := *r.admin
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.admin == nil || r.admin.ID != id {
		return admin.ErrAdminNotFound
	}
	r.admin.RefreshToken = refreshToken
	return nil
}

func newTestService(repo admin.Repository, allowRegistration bool) (admin.Service, *token.Manager) {
	tokens := token.NewManager("access-secret", "refresh-secret", 30*time.Minute, 7*24*time.Hour)
	return NewAdminService(repo, tokens, allowRegistration), tokens
}

func registerReq() admin.RegisterRequest {
	return admin.RegisterRequest{
		Name:     "Site Owner",
		Email:    "owner@example.com",
		Password: "secret123",
	}
}

func TestRegisterSucceedsOnce(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc, tokens := newTestService(repo, true)
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "owner@example.com", result.User.Email)
	assert.Equal(t, admin.RoleAdmin, result.User.Role)

	// The access token decodes back to the stored identity
	claims, err := tokens.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), claims.AdminID)

	// A second registration is rejected regardless of email
	second := registerReq()
	second.Email = "other@example.com"
	_, err = svc.Register(ctx, second)
	assert.ErrorIs(t, err, admin.ErrAdminExists)
}

func TestRegisterDisabled(t *testing.T) {
	svc, _ := newTestService(&fakeAdminRepo{}, false)

	_, err := svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, admin.ErrRegistrationDisabled)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(&fakeAdminRepo{}, true)
	ctx := context.Background()

	short := registerReq()
	short.Password = "12345"
	_, err := svc.Register(ctx, short)
	assert.Error(t, err)

	badEmail := registerReq()
	badEmail.Email = "not-an-email"
	_, err = svc.Register(ctx, badEmail)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc, _ := newTestService(repo, true)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	result, err := svc.Login(ctx, admin.LoginRequest{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)

	// Password hash never leaves the service layer
	assert.Equal(t, "owner@example.com", result.User.Email)

	_, err = svc.Login(ctx, admin.LoginRequest{Email: "owner@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	_, err = svc.Login(ctx, admin.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestRefreshRotation(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc, _ := newTestService(repo, true)
	ctx := context.Background()

	first, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	// The stored refresh token works
	accessToken, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	// Logging in again rotates the stored token; the old one is dead
	second, err := svc.Login(ctx, admin.LoginRequest{Email: "owner@example.com", Password: "secret123"})
	require.NoError(t, err)

	if first.RefreshToken != second.RefreshToken {
		_, err = svc.Refresh(ctx, first.RefreshToken)
		assert.ErrorIs(t, err, admin.ErrInvalidRefreshToken)
	}

	_, err = svc.Refresh(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc, _ := newTestService(repo, true)
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.User.ID))

	_, err = svc.Refresh(ctx, result.RefreshToken)
	assert.ErrorIs(t, err, admin.ErrInvalidRefreshToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(&fakeAdminRepo{}, true)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, admin.ErrInvalidRefreshToken)
}

func TestGetProfile(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc, _ := newTestService(repo, true)
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Site Owner", profile.Name)

	_, err = svc.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}
