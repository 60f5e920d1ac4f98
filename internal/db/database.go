package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sjpathak2211/ai-dashboard/internal/apperr"
	"github.com/sjpathak2211/ai-dashboard/internal/models"
)

type Database struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context) (*Database, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	db := &Database{Pool: pool}
	if err := db.initSchema(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		picture TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS ai_requests (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		department TEXT NOT NULL,
		priority TEXT NOT NULL,
		estimated_impact TEXT NOT NULL,
		contact_info TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Planning',
		progress INT NOT NULL DEFAULT 0,
		admin_notes TEXT NOT NULL DEFAULT '',
		user_id TEXT REFERENCES users(id),
		user_email TEXT NOT NULL,
		user_name TEXT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Planning',
		progress INT NOT NULL DEFAULT 0,
		assigned_team TEXT NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		estimated_completion TIMESTAMPTZ NOT NULL,
		priority TEXT NOT NULL,
		department TEXT NOT NULL,
		budget BIGINT,
		tags JSONB NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS backlog_status (
		id INT PRIMARY KEY,
		status TEXT NOT NULL,
		message TEXT NOT NULL,
		estimated_wait_time TEXT NOT NULL,
		updated_by TEXT REFERENCES users(id),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS activity_log (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		user_id TEXT REFERENCES users(id),
		request_id TEXT REFERENCES ai_requests(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_requests_user ON ai_requests(user_id);
	CREATE INDEX IF NOT EXISTS idx_requests_status ON ai_requests(status);
	CREATE INDEX IF NOT EXISTS idx_activity_created ON activity_log(created_at);
	CREATE INDEX IF NOT EXISTS idx_activity_request ON activity_log(request_id);
	`

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return err
	}

	_, err := db.Pool.Exec(ctx, "ALTER TABLE projects ADD COLUMN IF NOT EXISTS budget BIGINT")
	if err != nil {
		return err
	}

	_, err = db.Pool.Exec(ctx, "ALTER TABLE users ADD COLUMN IF NOT EXISTS picture TEXT NOT NULL DEFAULT ''")
	return err
}

func (db *Database) Close() {
	db.Pool.Close()
}

func storeErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	return &apperr.PersistenceError{Op: op, Err: err}
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func unmarshalTags(raw []byte, p *models.Project) {
	if err := json.Unmarshal(raw, &p.Tags); err != nil {
		p.Tags = []string{}
	}
}

// touch fills a zero timestamp with the current time, matching the column
// DEFAULT now() behavior for rows built in Go.
func touch(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

func newID() string { return uuid.NewString() }
