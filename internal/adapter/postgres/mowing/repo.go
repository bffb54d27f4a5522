// Package mowing implements the Mowing repository using PostgreSQL.
// Each row stores the whole aggregate as a JSONB document keyed by shortid.
package mowing

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
	getByShortIDSQL = `SELECT doc FROM mowings WHERE shortid = $1`

	insertSQL = `
INSERT INTO mowings (shortid, account_id, username, doc)
VALUES ($1, $2, $3, $4)`

	replaceSQL = `
UPDATE mowings
SET doc = $2, updated_at = now()
WHERE shortid = $1`
)

// Repo provides mowing-event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mowing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByShortID returns the mowing with the given shortid.
func (r *Repo) GetByShortID(ctx context.Context, shortID string) (*domain.Mowing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var doc []byte
	if err := q.QueryRow(ctx, getByShortIDSQL, shortID).Scan(&doc); err != nil {
		return nil, postgres.MapError(err, "mowing", shortID)
	}
	return decode(doc, shortID)
}

// List returns every mowing ordered by date, then title.
func (r *Repo) List(ctx context.Context) ([]*domain.Mowing, error) {
	query, args, err := sq.Select("doc").
		From("mowings").
		OrderBy("doc->>'date'", "doc->>'title'").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list mowings query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mowings: %w", err)
	}
	defer rows.Close()

	mowings := []*domain.Mowing{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan mowing doc: %w", err)
		}
		m, err := decode(doc, "")
		if err != nil {
			return nil, err
		}
		mowings = append(mowings, m)
	}
	return mowings, rows.Err()
}

// Create inserts a new mowing document.
func (r *Repo) Create(ctx context.Context, m *domain.Mowing) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mowing %s: %w", m.ShortID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, insertSQL, m.ShortID, m.AccountID, m.Username, doc); err != nil {
		return postgres.MapError(err, "mowing", m.ShortID)
	}
	return nil
}

// Replace persists the whole mowing document, overwriting the stored one.
// Returns domain.ErrNotFound when the mowing does not exist.
func (r *Repo) Replace(ctx context.Context, m *domain.Mowing) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mowing %s: %w", m.ShortID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, replaceSQL, m.ShortID, doc)
	if err != nil {
		return postgres.MapError(err, "mowing", m.ShortID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mowing %s: %w", m.ShortID, domain.ErrNotFound)
	}
	return nil
}

func decode(doc []byte, key string) (*domain.Mowing, error) {
	var m domain.Mowing
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("unmarshal mowing %s: %w", key, err)
	}
	return &m, nil
}
