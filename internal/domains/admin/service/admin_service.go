package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/admin"
	"portfolio-backend/pkg/token"
)

// bcrypt cost 12: balance between security and login latency.
const bcryptCost = 12

type adminService struct {
	repo              admin.Repository
	tokens            *token.Manager
	allowRegistration bool
}

func NewAdminService(repo admin.Repository, tokens *token.Manager, allowRegistration bool) admin.Service {
	return &adminService{
		repo:              repo,
		tokens:            tokens,
		allowRegistration: allowRegistration,
	}
}

func (s *adminService) Register(ctx context.Context, req admin.RegisterRequest) (*admin.AuthResult, error) {
	if !s.allowRegistration {
		return nil, admin.ErrRegistrationDisabled
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newAdmin := &admin.Admin{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         admin.RoleAdmin,
	}

	// The store enforces the single-admin invariant atomically.
	if err := s.repo.CreateIfNone(ctx, newAdmin); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, newAdmin)
}

func (s *adminService) Login(ctx context.Context, req admin.LoginRequest) (*admin.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if a == nil {
		// Same error for unknown email and wrong password; callers
		// cannot probe which emails exist.
		return nil, admin.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, admin.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, a)
}

// issueTokens generates a fresh pair and persists the refresh token,
// superseding any previous session.
func (s *adminService) issueTokens(ctx context.Context, a *admin.Admin) (*admin.AuthResult, error) {
	accessToken, err := s.tokens.GenerateAccessToken(a.ID, a.Email, a.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(a.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.repo.UpdateRefreshToken(ctx, a.ID, &refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &admin.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         a.ToProfile(),
	}, nil
}

func (s *adminService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", admin.ErrInvalidRefreshToken
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return "", admin.ErrInvalidRefreshToken
	}

	a, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return "", fmt.Errorf("find admin: %w", err)
	}

	// The presented token must equal the stored one, so superseded and
	// logged-out tokens are rejected even before their expiry.
	if a == nil || a.RefreshToken == nil || *a.RefreshToken != refreshToken {
		return "", admin.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(a.ID, a.Email, a.Role)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

func (s *adminService) Logout(ctx context.Context, adminID uuid.UUID) error {
	return s.repo.UpdateRefreshToken(ctx, adminID, nil)
}

func (s *adminService) GetProfile(ctx context.Context, adminID uuid.UUID) (*admin.Profile, error) {
	a, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if a == nil {
		return nil, admin.ErrAdminNotFound
	}

	profile := a.ToProfile()
	return &profile, nil
}
