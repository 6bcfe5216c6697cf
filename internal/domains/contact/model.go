package contact

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission. The sender's IP is recorded for
// abuse tracing and never returned to public callers.
type Message struct {
	ID        uuid.UUID `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Message   string    `json:"message" db:"message"`
	Read      bool      `json:"read" db:"read"`
	IPAddress string    `json:"ipAddress,omitempty" db:"ip_address"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
