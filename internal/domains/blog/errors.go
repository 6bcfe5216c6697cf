package blog

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrSlugExists   = errors.New("post slug already exists")
)
