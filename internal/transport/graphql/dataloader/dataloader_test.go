package dataloader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/domain"
	dl "github.com/lawndon/lawndon-backend/internal/transport/graphql/dataloader"
)

// ---------------------------------------------------------------------------
// Mock repos
// ---------------------------------------------------------------------------

type mockProfileRepo struct {
	result []*domain.Profile
	err    error
	calls  int
	keys   [][]string
}

func (m *mockProfileRepo) GetByAccountIDs(_ context.Context, accountIDs []string) ([]*domain.Profile, error) {
	m.calls++
	m.keys = append(m.keys, accountIDs)
	return m.result, m.err
}

func newProfile(accountID, username string) *domain.Profile {
	return domain.NewProfile(accountID, username, "code-"+accountID, "@"+username,
		"North", domain.Cord{}, "Mon", "")
}

// ---------------------------------------------------------------------------
// Loader tests
// ---------------------------------------------------------------------------

func TestProfileByAccountID_BatchesKeys(t *testing.T) {
	repo := &mockProfileRepo{
		result: []*domain.Profile{
			newProfile("acc-1", "alice"),
			newProfile("acc-2", "bob"),
		},
	}
	loaders := dl.NewLoaders(&dl.Repos{Profile: repo})
	ctx := context.Background()

	thunk1 := loaders.ProfileByAccountID.Load(ctx, "acc-1")
	thunk2 := loaders.ProfileByAccountID.Load(ctx, "acc-2")

	p1, err := thunk1()
	require.NoError(t, err)
	p2, err := thunk2()
	require.NoError(t, err)

	assert.Equal(t, "alice", p1.Username)
	assert.Equal(t, "bob", p2.Username)
	assert.Equal(t, 1, repo.calls)
	require.Len(t, repo.keys, 1)
	assert.ElementsMatch(t, []string{"acc-1", "acc-2"}, repo.keys[0])
}

func TestProfileByAccountID_MissingKey(t *testing.T) {
	repo := &mockProfileRepo{
		result: []*domain.Profile{newProfile("acc-1", "alice")},
	}
	loaders := dl.NewLoaders(&dl.Repos{Profile: repo})

	thunk := loaders.ProfileByAccountID.Load(context.Background(), "ghost")
	_, err := thunk()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileByAccountID_RepoError(t *testing.T) {
	repo := &mockProfileRepo{err: errors.New("boom")}
	loaders := dl.NewLoaders(&dl.Repos{Profile: repo})

	thunk := loaders.ProfileByAccountID.Load(context.Background(), "acc-1")
	_, err := thunk()
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// Context / Middleware tests
// ---------------------------------------------------------------------------

func TestFromContext_PanicsWithoutMiddleware(t *testing.T) {
	assert.Panics(t, func() {
		dl.FromContext(context.Background())
	})
}

func TestMiddleware_InjectsLoaders(t *testing.T) {
	repos := &dl.Repos{Profile: &mockProfileRepo{}}

	var got *dl.Loaders
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = dl.FromContext(r.Context())
	})

	handler := dl.Middleware(repos)(next)
	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.NotNil(t, got.ProfileByAccountID)
}
