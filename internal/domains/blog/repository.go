package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for blog posts.
type Repository interface {
	// List returns posts newest-first. When publishedOnly is true,
	// drafts are excluded.
	List(ctx context.Context, publishedOnly bool) ([]*Post, error)

	// GetByID returns nil, nil when no post matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// GetBySlug returns nil, nil when no post matches.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// Create persists a new post. Returns ErrSlugExists on a duplicate
	// slug.
	Create(ctx context.Context, p *Post) error

	// Update overwrites the stored row. Returns ErrPostNotFound when the
	// row is gone, ErrSlugExists on a duplicate slug.
	Update(ctx context.Context, p *Post) error

	// Delete returns ErrPostNotFound when the row is gone.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter atomically and returns the
	// new value. Returns ErrPostNotFound when the row is gone.
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
}
