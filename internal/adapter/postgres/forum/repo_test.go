package forum_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/forum"
	"github.com/lawndon/lawndon-backend/internal/adapter/postgres/testhelper"
	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

func TestRepo_CreateAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := forum.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedProfile(t, pool)

	id := shortid.New()
	f := domain.NewForum(id, owner, "Striping tips", "technique", "open", "DE",
		"how to get clean stripes", "active", "North", domain.Cord{})
	f.AddSource(shortid.New(), "Alice", "Mowing heights", "guide", "https://example.com/g")

	require.NoError(t, repo.Create(ctx, f))

	got, err := repo.GetByShortID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, owner.AccountID, got.AccountID)
	assert.Equal(t, owner.TelegramTag, got.TelegramTag)
	assert.Equal(t, float64(0), got.Progress)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, "Mowing heights", got.Sources[0].Title)
}

func TestRepo_GetMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := forum.New(pool)

	_, err := repo.GetByShortID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Replace(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := forum.New(pool)
	ctx := context.Background()

	owner := testhelper.SeedProfile(t, pool)
	f := testhelper.SeedForum(t, pool, owner)

	f.SetProgress(42)
	f.AddImage(shortid.New(), "before", "easy", "jpeg", "pending", "before.jpg")
	require.NoError(t, repo.Replace(ctx, f))

	got, err := repo.GetByShortID(ctx, f.ShortID)
	require.NoError(t, err)
	assert.Equal(t, float64(42), got.Progress)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "pending", got.Images[0].Status)
}

func TestRepo_ReplaceMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := forum.New(pool)

	owner := testhelper.SeedProfile(t, pool)
	ghost := domain.NewForum(shortid.New(), owner, "Ghost", "general", "open", "DE",
		"", "active", "North", domain.Cord{})

	err := repo.Replace(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_List(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := forum.New(pool)

	owner := testhelper.SeedProfile(t, pool)
	a := testhelper.SeedForum(t, pool, owner)
	b := testhelper.SeedForum(t, pool, owner)

	all, err := repo.List(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool, len(all))
	for _, f := range all {
		ids[f.ShortID] = true
	}
	assert.True(t, ids[a.ShortID])
	assert.True(t, ids[b.ShortID])
}
