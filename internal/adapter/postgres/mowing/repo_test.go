package mowing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/mowing"
	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/testhelper"
	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

func TestRepo_CreateAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mowing.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedProfile(t, pool)

	id := shortid.New()
	m := domain.NewMowing(id, owner, "Park cleanup", "community", "medium", 500,
		"2024-07-12", "09:30", "North", domain.Cord{Lat: 52.5, Long: 13.4},
		[]domain.Cord{{Lat: 52.5, Long: 13.4}, {Lat: 52.6, Long: 13.5}}, "organizer")

	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.GetByShortID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, owner.AccountID, got.AccountID)
	assert.Len(t, got.Borders, 2)
	require.Len(t, got.Members, 1)
	assert.Equal(t, owner.AccountID, got.Members[0].AccountID)
	assert.Equal(t, "organizer", got.Members[0].Activity)
}

func TestRepo_GetMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mowing.New(pool)

	_, err := repo.GetByShortID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_ReplaceMembership(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mowing.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedProfile(t, pool)
	joiner := testhelper.SeedProfile(t, pool)
	m := testhelper.SeedMowing(t, pool, owner)

	m.Join(joiner, "helper")
	require.NoError(t, repo.Replace(ctx, m))

	got, err := repo.GetByShortID(ctx, m.ShortID)
	require.NoError(t, err)
	require.Len(t, got.Members, 2)

	got.Leave(joiner.AccountID)
	require.NoError(t, repo.Replace(ctx, got))

	got, err = repo.GetByShortID(ctx, m.ShortID)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
	assert.Equal(t, owner.AccountID, got.Members[0].AccountID)
}

func TestRepo_ReplaceMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mowing.New(pool)

	owner := testhelper.SeedProfile(t, pool)
	ghost := domain.NewMowing(shortid.New(), owner, "Ghost", "community", "easy", 100,
		"2024-01-01", "08:00", "North", domain.Cord{}, nil, "organizer")

	err := repo.Replace(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_List(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := mowing.New(pool)

	owner := testhelper.SeedProfile(t, pool)
	a := testhelper.SeedMowing(t, pool, owner)
	b := testhelper.SeedMowing(t, pool, owner)

	all, err := repo.List(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool, len(all))
	for _, m := range all {
		ids[m.ShortID] = true
	}
	assert.True(t, ids[a.ShortID])
	assert.True(t, ids[b.ShortID])
}
