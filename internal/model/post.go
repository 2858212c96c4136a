package model

import (
	"errors"
	"time"
)

// Post represents a user's post. GroupID is optional: a post may live
// outside any group, and deleting a group clears the reference rather
// than cascading.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	AuthorID  int64     `db:"author_id" json:"author_id"`
	GroupID   *int64    `db:"group_id" json:"group_id,omitempty"`
	Text      string    `db:"text" json:"text"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined fields (not in posts table)
	Author *UserSummary `json:"author,omitempty"`
	Group  *Group       `json:"group,omitempty"`
}

// CreatePostRequest is the request body for creating a post.
// GroupSlug is optional; an unknown slug is a validation failure.
type CreatePostRequest struct {
	Text      string  `json:"text"`
	GroupSlug *string `json:"group_slug,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// UpdatePostRequest is the request body for editing a post.
// Same fields as creation; the author and creation time never change.
type UpdatePostRequest struct {
	Text      string  `json:"text"`
	GroupSlug *string `json:"group_slug,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// PostDetail is the detail-page payload: the post, its comments newest
// first, and the author's total post count.
type PostDetail struct {
	Post            Post      `json:"post"`
	Comments        []Comment `json:"comments"`
	AuthorPostCount int       `json:"author_post_count"`
}

// Post errors
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostAuthor = errors.New("not the author of this post")
	ErrTextRequired  = errors.New("post text is required")
)
