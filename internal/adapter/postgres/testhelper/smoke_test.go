package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	p := SeedProfile(t, pool)

	var username string
	err := pool.QueryRow(
		context.Background(),
		`SELECT username FROM profiles WHERE account_id = $1`,
		p.AccountID,
	).Scan(&username)
	if err != nil {
		t.Fatalf("expected profile in DB, got error: %v", err)
	}

	if username != p.Username {
		t.Fatalf("expected username %q, got %q", p.Username, username)
	}
}
