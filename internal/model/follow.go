package model

import "time"

// Follow is a directed edge meaning the follower sees the author's
// posts in their personalized feed. The pair is unique at the storage
// layer (composite primary key).
type Follow struct {
	FollowerID int64     `db:"follower_id" json:"follower_id"`
	AuthorID   int64     `db:"author_id" json:"author_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Profile is the profile-page payload alongside the author's paginated
// posts: the author, their total post count, and whether the viewer
// follows them (always false for anonymous viewers).
type Profile struct {
	Author    UserSummary `json:"author"`
	PostCount int         `json:"post_count"`
	Following bool        `json:"following"`
}
