package repository

import (
	"context"

	"microblog/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
}

// PostRepository lists posts with page-number pagination: each listing
// method takes a limit/offset pair and has a count sibling so callers
// can compute page metadata and clamp the requested page before the
// listing query runs.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, postID, authorID int64) error

	ListAll(ctx context.Context, limit, offset int) ([]model.Post, error)
	CountAll(ctx context.Context) (int, error)
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error)
	CountByGroup(ctx context.Context, groupID int64) (int, error)
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]model.Post, error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
	ListByFollowed(ctx context.Context, followerID int64, limit, offset int) ([]model.Post, error)
	CountByFollowed(ctx context.Context, followerID int64) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByPostID(ctx context.Context, postID int64) ([]model.Comment, error)
}

type FollowRepository interface {
	// Create inserts the edge if absent and reports whether a row was
	// actually inserted. Duplicate pairs are absorbed by the storage
	// layer's uniqueness constraint.
	Create(ctx context.Context, followerID, authorID int64) (bool, error)
	// Delete removes the edge if present and reports whether a row was
	// actually deleted. Deleting an absent edge is not an error.
	Delete(ctx context.Context, followerID, authorID int64) (bool, error)
	Exists(ctx context.Context, followerID, authorID int64) (bool, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}
