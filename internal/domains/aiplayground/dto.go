package aiplayground

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxTextPromptLen  = 2000
	maxImagePromptLen = 1000
)

type TextRequest struct {
	Prompt string `json:"prompt"`
}

func (r TextRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt,
			validation.Required.Error("please provide a prompt"),
			validation.Length(1, maxTextPromptLen).Error("prompt must be at most 2000 characters"),
		),
	)
}

type ImageRequest struct {
	Prompt string `json:"prompt"`
}

func (r ImageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt,
			validation.Required.Error("please provide a prompt"),
			validation.Length(1, maxImagePromptLen).Error("prompt must be at most 1000 characters"),
		),
	)
}

// GenerateResponse is the payload returned by the text and image
// endpoints.
type GenerateResponse struct {
	Text   string `json:"text"`
	Model  string `json:"model"`
	Tokens int    `json:"tokens,omitempty"`
}

// HealthStatus reports whether the provider is usable.
type HealthStatus struct {
	Configured bool   `json:"configured"`
	Model      string `json:"model"`
	Status     string `json:"status"`
}
