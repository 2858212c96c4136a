package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the follow edge if absent. The composite primary key
// on (follower_id, author_id) makes duplicates impossible even under
// concurrent requests; ON CONFLICT absorbs the race instead of erroring.
func (r *followRepository) Create(ctx context.Context, followerID, authorID int64) (bool, error) {
	query := `
		INSERT INTO follows (follower_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, author_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete removes the follow edge if present.
func (r *followRepository) Delete(ctx context.Context, followerID, authorID int64) (bool, error) {
	query := `DELETE FROM follows WHERE follower_id = $1 AND author_id = $2`
	result, err := r.db.ExecContext(ctx, query, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND author_id = $2)`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}
	return exists, nil
}
