package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "My Cool Project", "my-cool-project"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"diacritics folded", "Café São Paulo", "cafe-sao-paulo"},
		{"consecutive spaces", "too   many   spaces", "too-many-spaces"},
		{"leading and trailing junk", "  --Trimmed--  ", "trimmed"},
		{"numbers kept", "Top 10 Tips for 2026", "top-10-tips-for-2026"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"empty input", "", ""},
		{"only symbols", "!!!***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	first := GenerateSlug("Portfolio Backend v2")
	second := GenerateSlug("Portfolio Backend v2")
	assert.Equal(t, first, second)

	// Re-slugging a slug is a no-op
	assert.Equal(t, first, GenerateSlug(first))
}
