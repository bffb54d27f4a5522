// Package profile implements the Profile repository using PostgreSQL.
// The whole aggregate is stored as a JSONB document; the natural keys
// (account_id, username, security_code) are kept in dedicated columns so the
// database enforces their uniqueness.
package profile

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
	getByAccountIDSQL    = `SELECT doc FROM profiles WHERE account_id = $1`
	getByUsernameSQL     = `SELECT doc FROM profiles WHERE username = $1`
	getBySecurityCodeSQL = `SELECT doc FROM profiles WHERE security_code = $1`
	getByOwnerSQL        = `SELECT doc FROM profiles WHERE username = $1 AND account_id = $2`
	getByAccountIDsSQL   = `SELECT doc FROM profiles WHERE account_id = ANY($1)`

	insertSQL = `
INSERT INTO profiles (account_id, username, security_code, doc)
VALUES ($1, $2, $3, $4)`

	replaceSQL = `
UPDATE profiles
SET username = $2, security_code = $3, doc = $4, updated_at = now()
WHERE account_id = $1`
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByAccountID returns the profile with the given account id.
func (r *Repo) GetByAccountID(ctx context.Context, accountID string) (*domain.Profile, error) {
	return r.getOne(ctx, getByAccountIDSQL, accountID, accountID)
}

// GetByUsername returns the profile with the given username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return r.getOne(ctx, getByUsernameSQL, username, username)
}

// GetBySecurityCode returns the profile with the given security code.
func (r *Repo) GetBySecurityCode(ctx context.Context, code string) (*domain.Profile, error) {
	// Key the error on the entity name only: security codes do not belong in
	// error messages or logs.
	return r.getOne(ctx, getBySecurityCodeSQL, code, "by-security-code")
}

// GetByOwner returns the profile matching both username and account id.
// Creation mutations use it to verify the caller owns the account.
func (r *Repo) GetByOwner(ctx context.Context, username, accountID string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var doc []byte
	if err := q.QueryRow(ctx, getByOwnerSQL, username, accountID).Scan(&doc); err != nil {
		return nil, postgres.MapError(err, "profile", accountID)
	}
	return decode(doc, accountID)
}

// List returns every profile ordered by username.
func (r *Repo) List(ctx context.Context) ([]*domain.Profile, error) {
	query, args, err := sq.Select("doc").
		From("profiles").
		OrderBy("username").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list profiles query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*domain.Profile{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan profile doc: %w", err)
		}
		p, err := decode(doc, "")
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetByAccountIDs returns the profiles for the given account ids in no
// particular order (batch read for the DataLoader).
func (r *Repo) GetByAccountIDs(ctx context.Context, accountIDs []string) ([]*domain.Profile, error) {
	if len(accountIDs) == 0 {
		return []*domain.Profile{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, getByAccountIDsSQL, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("get profiles by account_ids: %w", err)
	}
	defer rows.Close()

	profiles := []*domain.Profile{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan profile doc: %w", err)
		}
		p, err := decode(doc, "")
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Create inserts a new profile document.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", p.AccountID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, insertSQL, p.AccountID, p.Username, p.SecurityCode, doc); err != nil {
		return postgres.MapError(err, "profile", p.AccountID)
	}
	return nil
}

// Replace persists the whole profile document, overwriting the stored one
// (last write wins). Returns domain.ErrNotFound when the profile does not
// exist.
func (r *Repo) Replace(ctx context.Context, p *domain.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", p.AccountID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, replaceSQL, p.AccountID, p.Username, p.SecurityCode, doc)
	if err != nil {
		return postgres.MapError(err, "profile", p.AccountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", p.AccountID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, query, arg, key string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var doc []byte
	if err := q.QueryRow(ctx, query, arg).Scan(&doc); err != nil {
		return nil, postgres.MapError(err, "profile", key)
	}
	return decode(doc, key)
}

func decode(doc []byte, key string) (*domain.Profile, error) {
	var p domain.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile %s: %w", key, err)
	}
	return &p, nil
}
