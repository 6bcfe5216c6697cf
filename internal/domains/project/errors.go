package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrSlugExists      = errors.New("project slug already exists")
)
