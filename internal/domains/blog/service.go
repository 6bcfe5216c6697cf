package blog

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for blog posts. Slug and read time
// derivation happen here, not in handlers or the store.
type Service interface {
	// ListPublished returns published posts only, newest-first.
	ListPublished(ctx context.Context) ([]*Post, error)

	// ListAll returns every post including drafts, newest-first.
	ListAll(ctx context.Context) ([]*Post, error)

	// GetBySlug returns a published post and bumps its view counter.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// Get returns a post by ID regardless of published state.
	Get(ctx context.Context, id uuid.UUID) (*Post, error)

	Create(ctx context.Context, req CreateRequest) (*Post, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
