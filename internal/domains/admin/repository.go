package admin

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the admin identity.
type Repository interface {
	// CreateIfNone inserts the admin only when the collection is empty.
	// The guard is atomic at the store level, so two concurrent
	// registrations cannot both succeed. Returns ErrAdminExists when a
	// row is already present, ErrEmailExists on a duplicate email.
	CreateIfNone(ctx context.Context, a *Admin) error

	// GetByID returns nil, nil when no admin matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)

	// GetByEmail returns nil, nil when no admin matches.
	GetByEmail(ctx context.Context, email string) (*Admin, error)

	// UpdateRefreshToken overwrites the stored refresh token; pass nil
	// to clear it (logout).
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken *string) error
}
