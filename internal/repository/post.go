package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"microblog/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// selectPosts is the shared projection for post listings: the post row
// plus its joined author and optional group. Ordering is creation time
// descending with the id as a stable tiebreak.
const selectPosts = `
	SELECT p.id, p.author_id, p.group_id, p.text, p.image_url, p.created_at,
	       u.id AS "author.id", u.username AS "author.username",
	       u.first_name AS "author.first_name", u.last_name AS "author.last_name",
	       g.id AS "group.id", g.title AS "group.title",
	       g.slug AS "group.slug", g.description AS "group.description"
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

const orderPosts = ` ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d`

// postRow scans the joined projection. Group columns are nullable
// because of the LEFT JOIN.
type postRow struct {
	ID        int64     `db:"id"`
	AuthorID  int64     `db:"author_id"`
	GroupID   *int64    `db:"group_id"`
	Text      string    `db:"text"`
	ImageURL  *string   `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`

	AuthorRowID     int64   `db:"author.id"`
	AuthorUsername  string  `db:"author.username"`
	AuthorFirstName *string `db:"author.first_name"`
	AuthorLastName  *string `db:"author.last_name"`

	GroupRowID       *int64  `db:"group.id"`
	GroupTitle       *string `db:"group.title"`
	GroupSlug        *string `db:"group.slug"`
	GroupDescription *string `db:"group.description"`
}

func (row postRow) toPost() model.Post {
	author := model.User{
		ID:        row.AuthorRowID,
		Username:  row.AuthorUsername,
		FirstName: row.AuthorFirstName,
		LastName:  row.AuthorLastName,
	}
	post := model.Post{
		ID:        row.ID,
		AuthorID:  row.AuthorID,
		GroupID:   row.GroupID,
		Text:      row.Text,
		ImageURL:  row.ImageURL,
		CreatedAt: row.CreatedAt,
		Author:    author.Summary(),
	}
	if row.GroupRowID != nil {
		post.Group = &model.Group{
			ID:          *row.GroupRowID,
			Title:       *row.GroupTitle,
			Slug:        *row.GroupSlug,
			Description: *row.GroupDescription,
		}
	}
	return post
}

// Create inserts a new post. The author and creation time are fixed at
// insert; edits never touch either.
func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (author_id, group_id, text, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, p.AuthorID, p.GroupID, p.Text, p.ImageURL).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID retrieves a single post with its author and group.
func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := selectPosts + ` WHERE p.id = $1`

	var row postRow
	err := r.db.GetContext(ctx, &row, query, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	post := row.toPost()
	return &post, nil
}

// Update overwrites the editable fields of a post. created_at and
// author_id are deliberately absent from the SET list.
func (r *postRepository) Update(ctx context.Context, p *model.Post) error {
	query := `
		UPDATE posts SET text = $1, group_id = $2, image_url = $3
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query, p.Text, p.GroupID, p.ImageURL, p.ID)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// Delete removes a post owned by authorID. Comments go with it via
// ON DELETE CASCADE.
func (r *postRepository) Delete(ctx context.Context, postID, authorID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM posts WHERE id = $1 AND author_id = $2`, postID, authorID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing post from someone else's post
		var exists bool
		r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, postID)
		if exists {
			return model.ErrNotPostAuthor
		}
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Post, error) {
	query := selectPosts + fmt.Sprintf(orderPosts, 1, 2)
	return r.listPosts(ctx, query, limit, offset)
}

func (r *postRepository) CountAll(ctx context.Context) (int, error) {
	return r.countPosts(ctx, `SELECT COUNT(*) FROM posts`)
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]model.Post, error) {
	query := selectPosts + ` WHERE p.group_id = $1` + fmt.Sprintf(orderPosts, 2, 3)
	return r.listPosts(ctx, query, limit, offset, groupID)
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID int64) (int, error) {
	return r.countPosts(ctx, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]model.Post, error) {
	query := selectPosts + ` WHERE p.author_id = $1` + fmt.Sprintf(orderPosts, 2, 3)
	return r.listPosts(ctx, query, limit, offset, authorID)
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	return r.countPosts(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
}

// ListByFollowed returns posts whose author has a follow edge from
// followerID.
func (r *postRepository) ListByFollowed(ctx context.Context, followerID int64, limit, offset int) ([]model.Post, error) {
	query := selectPosts +
		` WHERE p.author_id IN (SELECT author_id FROM follows WHERE follower_id = $1)` +
		fmt.Sprintf(orderPosts, 2, 3)
	return r.listPosts(ctx, query, limit, offset, followerID)
}

func (r *postRepository) CountByFollowed(ctx context.Context, followerID int64) (int, error) {
	return r.countPosts(ctx,
		`SELECT COUNT(*) FROM posts WHERE author_id IN (SELECT author_id FROM follows WHERE follower_id = $1)`,
		followerID)
}

// listPosts runs a listing query whose trailing args are limit, offset.
func (r *postRepository) listPosts(ctx context.Context, query string, limit, offset int, args ...interface{}) ([]model.Post, error) {
	args = append(args, limit, offset)

	var rows []postRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]model.Post, len(rows))
	for i, row := range rows {
		posts[i] = row.toPost()
	}
	return posts, nil
}

func (r *postRepository) countPosts(ctx context.Context, query string, args ...interface{}) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
