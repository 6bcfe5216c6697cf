package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for contact messages.
type Repository interface {
	// List returns all messages newest-first.
	List(ctx context.Context) ([]*Message, error)

	// GetByID returns nil, nil when no message matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Message, error)

	Create(ctx context.Context, m *Message) error

	// MarkRead flips the read flag. Returns ErrMessageNotFound when the
	// row is gone.
	MarkRead(ctx context.Context, id uuid.UUID) (*Message, error)

	// Delete returns ErrMessageNotFound when the row is gone.
	Delete(ctx context.Context, id uuid.UUID) error
}
