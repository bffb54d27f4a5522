// Package forum implements the Forum repository using PostgreSQL.
// Each row stores the whole aggregate as a JSONB document keyed by shortid.
package forum

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lawndon/lawndon-backend/internal/adapter/postgres"
	"github.com/lawndon/lawndon-backend/internal/domain"
)

const (
	getByShortIDSQL = `SELECT doc FROM forums WHERE shortid = $1`

	insertSQL = `
INSERT INTO forums (shortid, account_id, username, doc)
VALUES ($1, $2, $3, $4)`

	replaceSQL = `
UPDATE forums
SET doc = $2, updated_at = now()
WHERE shortid = $1`
)

// Repo provides forum persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new forum repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByShortID returns the forum with the given shortid.
func (r *Repo) GetByShortID(ctx context.Context, shortID string) (*domain.Forum, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var doc []byte
	if err := q.QueryRow(ctx, getByShortIDSQL, shortID).Scan(&doc); err != nil {
		return nil, postgres.MapError(err, "forum", shortID)
	}
	return decode(doc, shortID)
}

// List returns every forum ordered by title.
func (r *Repo) List(ctx context.Context) ([]*domain.Forum, error) {
	query, args, err := sq.Select("doc").
		From("forums").
		OrderBy("doc->>'title'").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list forums query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list forums: %w", err)
	}
	defer rows.Close()

	forums := []*domain.Forum{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan forum doc: %w", err)
		}
		f, err := decode(doc, "")
		if err != nil {
			return nil, err
		}
		forums = append(forums, f)
	}
	return forums, rows.Err()
}

// Create inserts a new forum document.
func (r *Repo) Create(ctx context.Context, f *domain.Forum) error {
	doc, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal forum %s: %w", f.ShortID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, insertSQL, f.ShortID, f.AccountID, f.Username, doc); err != nil {
		return postgres.MapError(err, "forum", f.ShortID)
	}
	return nil
}

// Replace persists the whole forum document, overwriting the stored one.
// Returns domain.ErrNotFound when the forum does not exist.
func (r *Repo) Replace(ctx context.Context, f *domain.Forum) error {
	doc, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal forum %s: %w", f.ShortID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, replaceSQL, f.ShortID, doc)
	if err != nil {
		return postgres.MapError(err, "forum", f.ShortID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("forum %s: %w", f.ShortID, domain.ErrNotFound)
	}
	return nil
}

func decode(doc []byte, key string) (*domain.Forum, error) {
	var f domain.Forum
	if err := json.Unmarshal(doc, &f); err != nil {
		return nil, fmt.Errorf("unmarshal forum %s: %w", key, err)
	}
	return &f, nil
}
