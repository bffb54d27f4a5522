// Package mower implements the Mower repository using PostgreSQL.
// Each row stores the whole aggregate as a JSONB document keyed by shortid.
package mower

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
	getByShortIDSQL = `SELECT doc FROM mowers WHERE shortid = $1`

	insertSQL = `
INSERT INTO mowers (shortid, account_id, username, doc)
VALUES ($1, $2, $3, $4)`

	replaceSQL = `
UPDATE mowers
SET doc = $2, updated_at = now()
WHERE shortid = $1`
)

// Repo provides mower persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mower repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByShortID returns the mower with the given shortid.
func (r *Repo) GetByShortID(ctx context.Context, shortID string) (*domain.Mower, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var doc []byte
	if err := q.QueryRow(ctx, getByShortIDSQL, shortID).Scan(&doc); err != nil {
		return nil, postgres.MapError(err, "mower", shortID)
	}
	return decode(doc, shortID)
}

// List returns every mower ordered by title.
func (r *Repo) List(ctx context.Context) ([]*domain.Mower, error) {
	query, args, err := sq.Select("doc").
		From("mowers").
		OrderBy("doc->>'title'").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list mowers query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mowers: %w", err)
	}
	defer rows.Close()

	mowers := []*domain.Mower{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan mower doc: %w", err)
		}
		m, err := decode(doc, "")
		if err != nil {
			return nil, err
		}
		mowers = append(mowers, m)
	}
	return mowers, rows.Err()
}

// Create inserts a new mower document.
func (r *Repo) Create(ctx context.Context, m *domain.Mower) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mower %s: %w", m.ShortID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, insertSQL, m.ShortID, m.AccountID, m.Username, doc); err != nil {
		return postgres.MapError(err, "mower", m.ShortID)
	}
	return nil
}

// Replace persists the whole mower document, overwriting the stored one.
// Returns domain.ErrNotFound when the mower does not exist.
func (r *Repo) Replace(ctx context.Context, m *domain.Mower) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mower %s: %w", m.ShortID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, replaceSQL, m.ShortID, doc)
	if err != nil {
		return postgres.MapError(err, "mower", m.ShortID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mower %s: %w", m.ShortID, domain.ErrNotFound)
	}
	return nil
}

func decode(doc []byte, key string) (*domain.Mower, error) {
	var m domain.Mower
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("unmarshal mower %s: %w", key, err)
	}
	return &m, nil
}
