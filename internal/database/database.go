package database

import (
	"context"
	"fmt"
	"log"

	"microblog/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

func Connect(cfg *config.Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Connected to database successfully")
	return db, nil
}

// schema is the full DDL for the application. Statements are idempotent
// so Migrate can run on every startup.
//
// The follows pair is a composite primary key: the create-if-absent
// follow operation relies on ON CONFLICT against it, so uniqueness is
// enforced at the storage layer rather than in application logic.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		username        TEXT NOT NULL UNIQUE,
		password_hashed TEXT NOT NULL,
		first_name      TEXT,
		last_name       TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS groups (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id         BIGSERIAL PRIMARY KEY,
		author_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		group_id   BIGINT REFERENCES groups(id) ON DELETE SET NULL,
		text       TEXT NOT NULL,
		image_url  TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created ON posts (created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_group ON posts (group_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id         BIGSERIAL PRIMARY KEY,
		post_id    BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		author_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		text       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS follows (
		follower_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		author_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (follower_id, author_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_author ON follows (author_id)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		revoked_at TIMESTAMPTZ
	)`,
}

// Migrate applies the schema. Safe to call on every startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	log.Println("Database schema is up to date")
	return nil
}
