package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/profile"
	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/testhelper"
	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

func TestRepo_CreateAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)
	ctx := context.Background()

	id := shortid.New()
	p := domain.NewProfile(id, "get-"+id, "sc-"+id, "@get", "North",
		domain.Cord{Lat: 1, Long: 2}, "Mon", "photo.jpg")
	p.AddZone(shortid.New(), "Front", "lawn", domain.Cord{}, 50, "active", "")

	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByAccountID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, p.Username, got.Username)
	assert.Equal(t, p.Cords, got.Cords)
	assert.Equal(t, float64(50), got.AreaSize)
	require.Len(t, got.Zones, 1)
	assert.Equal(t, "Front", got.Zones[0].Title)

	byName, err := repo.GetByUsername(ctx, p.Username)
	require.NoError(t, err)
	assert.Equal(t, id, byName.AccountID)

	byCode, err := repo.GetBySecurityCode(ctx, p.SecurityCode)
	require.NoError(t, err)
	assert.Equal(t, id, byCode.AccountID)

	byOwner, err := repo.GetByOwner(ctx, p.Username, id)
	require.NoError(t, err)
	assert.Equal(t, id, byOwner.AccountID)
}

func TestRepo_GetMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)

	_, err := repo.GetByAccountID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetBySecurityCode(context.Background(), "unknown-code")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_CreateDuplicateUsername(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)
	ctx := context.Background()

	first := testhelper.SeedProfile(t, pool)

	dup := domain.NewProfile(shortid.New(), first.Username, "sc-"+shortid.New(),
		"@dup", "South", domain.Cord{}, "Tue", "")
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_Replace(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)
	ctx := context.Background()

	p := testhelper.SeedProfile(t, pool)
	p.AddOrder(shortid.New(), "front lawn", 40, 30, "2024-05-01")
	p.Region = "South"

	require.NoError(t, repo.Replace(ctx, p))

	got, err := repo.GetByAccountID(ctx, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "South", got.Region)
	require.Len(t, got.Orders, 1)
	assert.False(t, got.Orders[0].IsAccepted)
}

func TestRepo_ReplaceMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)

	ghost := domain.NewProfile(shortid.New(), "ghost-"+shortid.New(),
		"sc-"+shortid.New(), "@ghost", "North", domain.Cord{}, "Mon", "")
	err := repo.Replace(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_List(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)

	a := testhelper.SeedProfile(t, pool)
	b := testhelper.SeedProfile(t, pool)

	all, err := repo.List(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool, len(all))
	for _, p := range all {
		ids[p.AccountID] = true
	}
	assert.True(t, ids[a.AccountID])
	assert.True(t, ids[b.AccountID])
}

func TestRepo_GetByAccountIDs(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)

	a := testhelper.SeedProfile(t, pool)
	b := testhelper.SeedProfile(t, pool)

	got, err := repo.GetByAccountIDs(context.Background(), []string{a.AccountID, b.AccountID, "missing"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := repo.GetByAccountIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepo_ContextCancelled(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetByAccountID(ctx, "any")
	require.Error(t, err)
}
