package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"microblog/internal/model"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

// Create inserts a new group. The slug is globally unique; a duplicate
// surfaces as model.ErrSlugExists via the unique constraint.
func (r *groupRepository) Create(ctx context.Context, g *model.Group) error {
	query := `
		INSERT INTO groups (title, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query, g.Title, g.Slug, g.Description).Scan(&g.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrSlugExists
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	query := `SELECT id, title, slug, description FROM groups WHERE slug = $1`

	var g model.Group
	err := r.db.GetContext(ctx, &g, query, slug)
	if err == sql.ErrNoRows {
		return nil, model.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group by slug: %w", err)
	}
	return &g, nil
}

func (r *groupRepository) List(ctx context.Context) ([]model.Group, error) {
	query := `SELECT id, title, slug, description FROM groups ORDER BY title`

	groups := []model.Group{}
	err := r.db.SelectContext(ctx, &groups, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}
