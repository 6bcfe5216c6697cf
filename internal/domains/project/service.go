package project

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for projects. Slug derivation from the
// title happens here, not in handlers or the store.
type Service interface {
	List(ctx context.Context) ([]*Project, error)
	Get(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, req CreateRequest) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
