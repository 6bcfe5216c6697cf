package blog

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article. ReadTime is derived from the content on every
// create and update, never accepted from the client. JSON field names
// stay wire-compatible with the previous API.
type Post struct {
	ID            uuid.UUID `json:"_id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Slug          string    `json:"slug" db:"slug"`
	Excerpt       string    `json:"excerpt" db:"excerpt"`
	Content       string    `json:"content" db:"content"`
	FeaturedImage string    `json:"featuredImage" db:"featured_image"`
	Tags          []string  `json:"tags" db:"tags"`
	Published     bool      `json:"published" db:"published"`
	ReadTime      int       `json:"readTime" db:"read_time"`
	Views         int       `json:"views" db:"views"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
