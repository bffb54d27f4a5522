package forum

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockProfileRepo struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.Profile, error)
	GetByOwnerFunc    func(ctx context.Context, username, accountID string) (*domain.Profile, error)
	ReplaceFunc       func(ctx context.Context, p *domain.Profile) error
}

func (m *mockProfileRepo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProfileRepo) GetByOwner(ctx context.Context, username, accountID string) (*domain.Profile, error) {
	if m.GetByOwnerFunc != nil {
		return m.GetByOwnerFunc(ctx, username, accountID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProfileRepo) Replace(ctx context.Context, p *domain.Profile) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, p)
	}
	return nil
}

type mockForumRepo struct {
	GetByShortIDFunc func(ctx context.Context, shortID string) (*domain.Forum, error)
	ListFunc         func(ctx context.Context) ([]*domain.Forum, error)
	CreateFunc       func(ctx context.Context, f *domain.Forum) error
	ReplaceFunc      func(ctx context.Context, f *domain.Forum) error
}

func (m *mockForumRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Forum, error) {
	if m.GetByShortIDFunc != nil {
		return m.GetByShortIDFunc(ctx, shortID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockForumRepo) List(ctx context.Context) ([]*domain.Forum, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockForumRepo) Create(ctx context.Context, f *domain.Forum) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	return nil
}

func (m *mockForumRepo) Replace(ctx context.Context, f *domain.Forum) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, f)
	}
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(profiles *mockProfileRepo, forums *mockForumRepo) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), profiles, forums, &mockTxManager{})
}

func testOwner() *domain.Profile {
	return domain.NewProfile("acc-1", "alice", "code-1", "@alice", "North",
		domain.Cord{}, "Mon", "")
}

func testForum(owner *domain.Profile) *domain.Forum {
	return domain.NewForum("f-1", owner, "Striping tips", "technique", "open",
		"DE", "clean stripes", "active", "North", domain.Cord{})
}

func createInput() CreateInput {
	return CreateInput{
		Username:    "alice",
		AccountID:   "acc-1",
		Title:       "Striping tips",
		Category:    "technique",
		Format:      "open",
		Country:     "DE",
		Description: "clean stripes",
		Status:      "active",
		Region:      "North",
	}
}

// ===========================================================================
// Create
// ===========================================================================

func TestCreate_LinksProfileAndInsertsForum(t *testing.T) {
	owner := testOwner()
	var replacedProfile *domain.Profile
	var created *domain.Forum

	profiles := &mockProfileRepo{
		GetByOwnerFunc: func(ctx context.Context, username, accountID string) (*domain.Profile, error) {
			return owner, nil
		},
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replacedProfile = p
			return nil
		},
	}
	forums := &mockForumRepo{
		CreateFunc: func(ctx context.Context, f *domain.Forum) error {
			created = f
			return nil
		},
	}
	svc := newTestService(profiles, forums)

	require.NoError(t, svc.Create(context.Background(), createInput()))

	require.NotNil(t, created)
	assert.Equal(t, "acc-1", created.AccountID)
	assert.Equal(t, "@alice", created.TelegramTag)
	assert.Equal(t, float64(0), created.Progress)

	require.NotNil(t, replacedProfile)
	require.Len(t, replacedProfile.AccountComponents, 1)
	assert.Equal(t, created.ShortID, replacedProfile.AccountComponents[0].ShortID)
	assert.Equal(t, domain.PathForum, replacedProfile.AccountComponents[0].Path)
}

func TestCreate_DuplicateTitle(t *testing.T) {
	owner := testOwner()
	owner.AddComponent("f-0", "Striping tips", domain.PathForum)

	profiles := &mockProfileRepo{
		GetByOwnerFunc: func(ctx context.Context, username, accountID string) (*domain.Profile, error) {
			return owner, nil
		},
	}
	svc := newTestService(profiles, &mockForumRepo{})

	err := svc.Create(context.Background(), createInput())
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreate_MissingOwner(t *testing.T) {
	svc := newTestService(&mockProfileRepo{}, &mockForumRepo{})

	err := svc.Create(context.Background(), createInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ===========================================================================
// Images / progress / sources
// ===========================================================================

func TestManageImage_CreateUpdateDelete(t *testing.T) {
	owner := testOwner()
	stored := testForum(owner)

	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return owner, nil
		},
	}
	forums := &mockForumRepo{
		GetByShortIDFunc: func(ctx context.Context, shortID string) (*domain.Forum, error) {
			return stored, nil
		},
	}
	svc := newTestService(profiles, forums)
	ctx := context.Background()

	require.NoError(t, svc.ManageImage(ctx, ManageImageInput{
		Username: "alice", ForumID: "f-1", Option: "create",
		Text: "before", Level: "easy", Format: "jpeg", Status: "pending", PhotoURL: "b.jpg",
	}))
	require.Len(t, stored.Images, 1)

	collID := stored.Images[0].ShortID
	require.NoError(t, svc.ManageImage(ctx, ManageImageInput{
		Username: "alice", ForumID: "f-1", Option: "update",
		Status: "approved", Text: "changed", CollID: collID,
	}))
	assert.Equal(t, "approved", stored.Images[0].Status)
	assert.Equal(t, "before", stored.Images[0].Text)

	require.NoError(t, svc.ManageImage(ctx, ManageImageInput{
		Username: "alice", ForumID: "f-1", Option: "drop", CollID: collID,
	}))
	assert.Empty(t, stored.Images)
}

func TestManageImage_MissingForum(t *testing.T) {
	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return testOwner(), nil
		},
	}
	svc := newTestService(profiles, &mockForumRepo{})

	err := svc.ManageImage(context.Background(), ManageImageInput{
		Username: "alice", ForumID: "ghost", Option: "create",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProgress(t *testing.T) {
	owner := testOwner()
	stored := testForum(owner)
	var replaced *domain.Forum

	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return owner, nil
		},
	}
	forums := &mockForumRepo{
		GetByShortIDFunc: func(ctx context.Context, shortID string) (*domain.Forum, error) {
			return stored, nil
		},
		ReplaceFunc: func(ctx context.Context, f *domain.Forum) error {
			replaced = f
			return nil
		},
	}
	svc := newTestService(profiles, forums)

	err := svc.UpdateProgress(context.Background(), UpdateProgressInput{
		Username: "alice", ForumID: "f-1", Progress: 66,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(66), replaced.Progress)
}

func TestManageSource_CreateLikeDelete(t *testing.T) {
	owner := testOwner()
	stored := testForum(owner)

	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return owner, nil
		},
	}
	forums := &mockForumRepo{
		GetByShortIDFunc: func(ctx context.Context, shortID string) (*domain.Forum, error) {
			return stored, nil
		},
	}
	svc := newTestService(profiles, forums)
	ctx := context.Background()

	require.NoError(t, svc.ManageSource(ctx, ManageSourceInput{
		Username: "alice", ForumID: "f-1", Option: "create",
		Title: "Mowing heights", Category: "guide", URL: "https://example.com/g",
	}))
	require.Len(t, stored.Sources, 1)
	assert.Equal(t, "alice", stored.Sources[0].Name)

	collID := stored.Sources[0].ShortID
	require.NoError(t, svc.ManageSource(ctx, ManageSourceInput{
		Username: "alice", ForumID: "f-1", Option: "like", CollID: collID,
	}))
	assert.Equal(t, float64(1), stored.Sources[0].Likes)

	require.NoError(t, svc.ManageSource(ctx, ManageSourceInput{
		Username: "alice", ForumID: "f-1", Option: "remove", CollID: collID,
	}))
	assert.Empty(t, stored.Sources)
}
