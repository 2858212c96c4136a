package model

import "errors"

// Group is a topical community posts can be assigned to.
// The slug is the external key used in URLs.
type Group struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

// CreateGroupRequest is the request body for creating a group.
type CreateGroupRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Group constraints
const (
	MaxGroupTitleLength = 200
	MaxGroupSlugLength  = 200
)

// Group errors
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrSlugExists    = errors.New("group slug already exists")
	ErrTitleRequired = errors.New("group title is required")
	ErrSlugRequired  = errors.New("group slug is required")
	ErrSlugInvalid   = errors.New("group slug may only contain letters, digits, hyphens and underscores")
)
