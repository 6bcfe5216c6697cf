package aiplayground

import (
	"time"

	"github.com/google/uuid"
)

// Usage types recorded in the log.
const (
	TypeText  = "text"
	TypeImage = "image"
)

// UsageLog records one playground generation attempt, successful or not.
type UsageLog struct {
	ID        uuid.UUID `json:"_id" db:"id"`
	Type      string    `json:"type" db:"type"`
	Prompt    string    `json:"prompt" db:"prompt"`
	Result    string    `json:"result" db:"result"`
	IPAddress string    `json:"ipAddress,omitempty" db:"ip_address"`
	Tokens    int       `json:"tokens" db:"tokens"`
	Success   bool      `json:"success" db:"success"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ModelInfo describes an entry in the static model catalog.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}
