package project

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry. JSON field names stay wire-compatible
// with the previous API the frontend was built against.
type Project struct {
	ID           uuid.UUID `json:"_id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Slug         string    `json:"slug" db:"slug"`
	Description  string    `json:"description" db:"description"`
	ImageURL     string    `json:"image" db:"image_url"`
	Technologies []string  `json:"technologies" db:"technologies"`
	Features     []string  `json:"features" db:"features"`
	LiveURL      string    `json:"liveUrl" db:"live_url"`
	GithubURL    string    `json:"githubUrl" db:"github_url"`
	Featured     bool      `json:"featured" db:"featured"`
	Order        int       `json:"order" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
