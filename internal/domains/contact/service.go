package contact

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for contact messages. Submission
// persists first; the notification email is best effort and never
// fails the request.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest, clientIP string) (*Message, error)
	List(ctx context.Context) ([]*Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
