package aiplayground

import "context"

// Repository persists playground usage logs.
type Repository interface {
	Create(ctx context.Context, entry *UsageLog) error
}
