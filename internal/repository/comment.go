package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"microblog/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment.
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, c.PostID, c.AuthorID, c.Text).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByPostID returns all comments on a post, newest first, with the
// joined author. The detail page shows the full thread so this listing
// is not paginated.
func (r *commentRepository) ListByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.text, c.created_at,
		       u.id AS "author.id", u.username AS "author.username",
		       u.first_name AS "author.first_name", u.last_name AS "author.last_name"
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`

	type commentRow struct {
		ID              int64     `db:"id"`
		PostID          int64     `db:"post_id"`
		AuthorID        int64     `db:"author_id"`
		Text            string    `db:"text"`
		CreatedAt       time.Time `db:"created_at"`
		AuthorRowID     int64     `db:"author.id"`
		AuthorUsername  string    `db:"author.username"`
		AuthorFirstName *string   `db:"author.first_name"`
		AuthorLastName  *string   `db:"author.last_name"`
	}

	var rows []commentRow
	err := r.db.SelectContext(ctx, &rows, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]model.Comment, len(rows))
	for i, row := range rows {
		author := model.User{
			ID:        row.AuthorRowID,
			Username:  row.AuthorUsername,
			FirstName: row.AuthorFirstName,
			LastName:  row.AuthorLastName,
		}
		comments[i] = model.Comment{
			ID:        row.ID,
			PostID:    row.PostID,
			AuthorID:  row.AuthorID,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
			Author:    author.Summary(),
		}
	}
	return comments, nil
}
