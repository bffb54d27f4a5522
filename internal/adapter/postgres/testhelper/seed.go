package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// SeedProfile creates a profile document with unique natural keys.
// Returns the filled domain.Profile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) *domain.Profile {
	t.Helper()
	ctx := context.Background()

	id := shortid.New()
	p := domain.NewProfile(
		id,
		"user-"+id,
		"code-"+id,
		"@user"+id,
		"North",
		domain.Cord{Lat: 52.5, Long: 13.4},
		"Mon",
		"",
	)

	doc, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("testhelper: marshal profile: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (account_id, username, security_code, doc)
		 VALUES ($1, $2, $3, $4)`,
		p.AccountID, p.Username, p.SecurityCode, doc,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return p
}

// SeedMower creates a mower document owned by the given profile.
// Returns the filled domain.Mower.
func SeedMower(t *testing.T, pool *pgxpool.Pool, owner *domain.Profile) *domain.Mower {
	t.Helper()
	ctx := context.Background()

	id := shortid.New()
	m := domain.NewMower(id, owner, "Mower "+id, "petrol", "ride-on", "DE", 42, false)

	doc, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("testhelper: marshal mower: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO mowers (shortid, account_id, username, doc)
		 VALUES ($1, $2, $3, $4)`,
		m.ShortID, m.AccountID, m.Username, doc,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMower insert: %v", err)
	}

	return m
}

// SeedMowing creates a mowing document owned by the given profile.
func SeedMowing(t *testing.T, pool *pgxpool.Pool, owner *domain.Profile) *domain.Mowing {
	t.Helper()
	ctx := context.Background()

	id := shortid.New()
	m := domain.NewMowing(id, owner, "Mowing "+id, "community", "easy", 300,
		"2024-06-01", "10:00", "North", domain.Cord{}, []domain.Cord{}, "organizer")

	doc, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("testhelper: marshal mowing: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO mowings (shortid, account_id, username, doc)
		 VALUES ($1, $2, $3, $4)`,
		m.ShortID, m.AccountID, m.Username, doc,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMowing insert: %v", err)
	}

	return m
}

// SeedForum creates a forum document owned by the given profile.
func SeedForum(t *testing.T, pool *pgxpool.Pool, owner *domain.Profile) *domain.Forum {
	t.Helper()
	ctx := context.Background()

	id := shortid.New()
	f := domain.NewForum(id, owner, "Forum "+id, "general", "open", "DE",
		"community forum", "active", "North", domain.Cord{})

	doc, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("testhelper: marshal forum: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO forums (shortid, account_id, username, doc)
		 VALUES ($1, $2, $3, $4)`,
		f.ShortID, f.AccountID, f.Username, doc,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedForum insert: %v", err)
	}

	return f
}
