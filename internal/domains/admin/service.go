package admin

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the admin authentication flow.
type Service interface {
	// Register creates the one and only admin account. Fails with
	// ErrRegistrationDisabled when the feature flag is off and with
	// ErrAdminExists once an account exists.
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)

	// Login verifies credentials and issues a fresh token pair,
	// overwriting the stored refresh token (single session).
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	// Refresh exchanges a valid, currently-stored refresh token for a
	// new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Logout clears the stored refresh token, invalidating future
	// refresh calls.
	Logout(ctx context.Context, adminID uuid.UUID) error

	// GetProfile returns the public profile of the given identity.
	GetProfile(ctx context.Context, adminID uuid.UUID) (*Profile, error)
}
