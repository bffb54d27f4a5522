package mower_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/mower"
	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/testhelper"
	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

func TestRepo_CreateAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mower.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedProfile(t, pool)

	id := shortid.New()
	m := domain.NewMower(id, owner, "Husqvarna 450X", "robot", "autonomous", "SE", 24, true)
	m.AddReview(shortid.New(), "Alice", "reliable on slopes", "wet grass", 4.5)

	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.GetByShortID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, owner.AccountID, got.AccountID)
	assert.Equal(t, owner.Username, got.Username)
	assert.True(t, got.IsStripe)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, 4.5, got.Reviews[0].Rate)
}

func TestRepo_GetMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mower.New(pool)

	_, err := repo.GetByShortID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_CreateUnknownOwner(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mower.New(pool)

	ghost := domain.NewProfile(shortid.New(), "ghost-"+shortid.New(),
		"sc-"+shortid.New(), "@ghost", "North", domain.Cord{}, "Mon", "")
	m := domain.NewMower(shortid.New(), ghost, "Orphan", "petrol", "push", "DE", 40, false)

	err := repo.Create(context.Background(), m)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Replace(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mower.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedProfile(t, pool)
	m := testhelper.SeedMower(t, pool, owner)

	m.SetInfo("https://example.com/m", "mower.jpg")
	m.AddOffer(shortid.New(), "Spring deal", "GardenMart", "new", 899, domain.Cord{})
	require.NoError(t, repo.Replace(ctx, m))

	got, err := repo.GetByShortID(ctx, m.ShortID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/m", got.Link)
	require.Len(t, got.Offers, 1)
	assert.Equal(t, float64(0), got.Offers[0].Likes)
}

func TestRepo_ReplaceMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mower.New(pool)

	owner := testhelper.SeedProfile(t, pool)
	ghost := domain.NewMower(shortid.New(), owner, "Ghost", "petrol", "push", "DE", 40, false)

	err := repo.Replace(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_List(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mower.New(pool)

	owner := testhelper.SeedProfile(t, pool)
	a := testhelper.SeedMower(t, pool, owner)
	b := testhelper.SeedMower(t, pool, owner)

	all, err := repo.List(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool, len(all))
	for _, m := range all {
		ids[m.ShortID] = true
	}
	assert.True(t, ids[a.ShortID])
	assert.True(t, ids[b.ShortID])
}
