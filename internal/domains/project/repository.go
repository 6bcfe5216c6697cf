package project

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for projects.
type Repository interface {
	// List returns all projects ordered featured-first, then by
	// explicit display order, then newest-first.
	List(ctx context.Context) ([]*Project, error)

	// GetByID returns nil, nil when no project matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// Create persists a new project. Returns ErrSlugExists on a
	// duplicate slug.
	Create(ctx context.Context, p *Project) error

	// Update overwrites the stored row. Returns ErrProjectNotFound when
	// the row is gone, ErrSlugExists on a duplicate slug.
	Update(ctx context.Context, p *Project) error

	// Delete returns ErrProjectNotFound when the row is gone.
	Delete(ctx context.Context, id uuid.UUID) error
}
