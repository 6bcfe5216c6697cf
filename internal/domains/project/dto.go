package project

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     string   `json:"image"`
	Technologies []string `json:"technologies"`
	Features     []string `json:"features"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("please provide a project title"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Required.Error("please provide a project description"),
		),
		validation.Field(&r.Technologies,
			validation.Required.Error("please provide at least one technology"),
		),
	)
}

// UpdateRequest applies a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	Features     *[]string `json:"features"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Featured     *bool     `json:"featured"`
	Order        *int      `json:"order"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
		),
		validation.Field(&r.Description,
			validation.NilOrNotEmpty.Error("description cannot be empty"),
		),
	)
}
