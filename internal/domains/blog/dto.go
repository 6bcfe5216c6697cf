package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateRequest struct {
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	FeaturedImage string   `json:"featuredImage"`
	Tags          []string `json:"tags"`
	// Published defaults to true when omitted; drafts are opt-in.
	Published *bool `json:"published"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("please provide a post title"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("please provide a post excerpt"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Content,
			validation.Required.Error("please provide post content"),
		),
	)
}

// UpdateRequest applies a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Title         *string   `json:"title"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	FeaturedImage *string   `json:"featuredImage"`
	Tags          *[]string `json:"tags"`
	Published     *bool     `json:"published"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
		),
		validation.Field(&r.Excerpt,
			validation.NilOrNotEmpty.Error("excerpt cannot be empty"),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be empty"),
		),
	)
}
