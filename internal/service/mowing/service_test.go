package mowing

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

type mockMowingRepo struct {
	GetByShortIDFunc func(ctx context.Context, shortID string) (*domain.Mowing, error)
	ListFunc         func(ctx context.Context) ([]*domain.Mowing, error)
	CreateFunc       func(ctx context.Context, m *domain.Mowing) error
	ReplaceFunc      func(ctx context.Context, m *domain.Mowing) error
}

func (m *mockMowingRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Mowing, error) {
	if m.GetByShortIDFunc != nil {
		return m.GetByShortIDFunc(ctx, shortID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockMowingRepo) List(ctx context.Context) ([]*domain.Mowing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMowingRepo) Create(ctx context.Context, mw *domain.Mowing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mw)
	}
	return nil
}

func (m *mockMowingRepo) Replace(ctx context.Context, mw *domain.Mowing) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, mw)
	}
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(profiles *mockProfileRepo, mowings *mockMowingRepo) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), profiles, mowings, &mockTxManager{})
}

func testOwner() *domain.Profile {
	return domain.NewProfile("acc-1", "alice", "code-1", "@alice", "North",
		domain.Cord{}, "Mon", "")
}

func createInput() CreateInput {
	return CreateInput{
		Username:  "alice",
		AccountID: "acc-1",
		Title:     "Park cleanup",
		Category:  "community",
		Level:     "easy",
		Square:    300,
		Date:      "2024-06-01",
		Time:      "10:00",
		Region:    "North",
		Activity:  "organizer",
	}
}

// ===========================================================================
// Create
// ===========================================================================

func TestCreate_SeedsCreatorAsMember(t *testing.T) {
	owner := testOwner()
	var replacedProfile *domain.Profile
	var created *domain.Mowing

	profiles := &mockProfileRepo{
		GetByOwnerFunc: func(ctx context.Context, username, accountID string) (*domain.Profile, error) {
			return owner, nil
		},
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replacedProfile = p
			return nil
		},
	}
	mowings := &mockMowingRepo{
		CreateFunc: func(ctx context.Context, m *domain.Mowing) error {
			created = m
			return nil
		},
	}
	svc := newTestService(profiles, mowings)

	require.NoError(t, svc.Create(context.Background(), createInput()))

	require.NotNil(t, created)
	require.Len(t, created.Members, 1)
	assert.Equal(t, "acc-1", created.Members[0].AccountID)
	assert.Equal(t, "organizer", created.Members[0].Activity)
	assert.Empty(t, created.Topics)

	require.NotNil(t, replacedProfile)
	require.Len(t, replacedProfile.AccountComponents, 1)
	assert.Equal(t, created.ShortID, replacedProfile.AccountComponents[0].ShortID)
	assert.Equal(t, domain.PathMowing, replacedProfile.AccountComponents[0].Path)
}

func TestCreate_DuplicateTitle(t *testing.T) {
	owner := testOwner()
	owner.AddComponent("mw-1", "Park cleanup", domain.PathMowing)

	profiles := &mockProfileRepo{
		GetByOwnerFunc: func(ctx context.Context, username, accountID string) (*domain.Profile, error) {
			return owner, nil
		},
	}
	svc := newTestService(profiles, &mockMowingRepo{})

	err := svc.Create(context.Background(), createInput())
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreate_MissingOwner(t *testing.T) {
	svc := newTestService(&mockProfileRepo{}, &mockMowingRepo{})

	err := svc.Create(context.Background(), createInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ===========================================================================
// Membership
// ===========================================================================

func TestManageStatus_JoinThenLeave(t *testing.T) {
	owner := testOwner()
	joiner := domain.NewProfile("acc-2", "bob", "code-2", "@bob", "South",
		domain.Cord{}, "Tue", "")
	stored := domain.NewMowing("mw-1", owner, "Park cleanup", "community", "easy",
		300, "2024-06-01", "10:00", "North", domain.Cord{}, nil, "organizer")

	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return joiner, nil
		},
	}
	mowings := &mockMowingRepo{
		GetByShortIDFunc: func(ctx context.Context, shortID string) (*domain.Mowing, error) {
			return stored, nil
		},
	}
	svc := newTestService(profiles, mowings)
	ctx := context.Background()

	require.NoError(t, svc.ManageStatus(ctx, ManageStatusInput{
		Username: "bob", MowingID: "mw-1", Option: "join", Activity: "helper",
	}))
	require.Len(t, stored.Members, 2)
	assert.Equal(t, "acc-2", stored.Members[1].AccountID)
	require.Len(t, joiner.AccountComponents, 1)
	assert.Equal(t, "mw-1", joiner.AccountComponents[0].ShortID)

	require.NoError(t, svc.ManageStatus(ctx, ManageStatusInput{
		Username: "bob", MowingID: "mw-1", Option: "update", Activity: "surveyor",
	}))
	assert.Equal(t, "surveyor", stored.Members[1].Activity)

	require.NoError(t, svc.ManageStatus(ctx, ManageStatusInput{
		Username: "bob", MowingID: "mw-1", Option: "leave",
	}))
	require.Len(t, stored.Members, 1)
	assert.Equal(t, "acc-1", stored.Members[0].AccountID)
	assert.Empty(t, joiner.AccountComponents)
}

func TestManageStatus_MissingMowing(t *testing.T) {
	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return testOwner(), nil
		},
	}
	svc := newTestService(profiles, &mockMowingRepo{})

	err := svc.ManageStatus(context.Background(), ManageStatusInput{
		Username: "alice", MowingID: "ghost", Option: "join",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ===========================================================================
// Photo / topics
// ===========================================================================

func TestUpdatePhoto(t *testing.T) {
	owner := testOwner()
	stored := domain.NewMowing("mw-1", owner, "Park cleanup", "community", "easy",
		300, "2024-06-01", "10:00", "North", domain.Cord{}, nil, "organizer")
	var replaced *domain.Mowing

	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return owner, nil
		},
	}
	mowings := &mockMowingRepo{
		GetByShortIDFunc: func(ctx context.Context, shortID string) (*domain.Mowing, error) {
			return stored, nil
		},
		ReplaceFunc: func(ctx context.Context, m *domain.Mowing) error {
			replaced = m
			return nil
		},
	}
	svc := newTestService(profiles, mowings)

	err := svc.UpdatePhoto(context.Background(), UpdatePhotoInput{
		Username: "alice", MowingID: "mw-1", MainPhoto: "after.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "after.jpg", replaced.MainPhoto)
}

func TestManageTopic_CreateSupportDelete(t *testing.T) {
	owner := testOwner()
	stored := domain.NewMowing("mw-1", owner, "Park cleanup", "community", "easy",
		300, "2024-06-01", "10:00", "North", domain.Cord{}, nil, "organizer")

	profiles := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return owner, nil
		},
	}
	mowings := &mockMowingRepo{
		GetByShortIDFunc: func(ctx context.Context, shortID string) (*domain.Mowing, error) {
			return stored, nil
		},
	}
	svc := newTestService(profiles, mowings)
	ctx := context.Background()

	require.NoError(t, svc.ManageTopic(ctx, ManageTopicInput{
		Username: "alice", MowingID: "mw-1", Option: "create",
		Text: "bring rakes", Category: "logistics",
	}))
	require.Len(t, stored.Topics, 1)
	assert.Equal(t, "alice", stored.Topics[0].Name)
	assert.Equal(t, float64(0), stored.Topics[0].Supports)

	collID := stored.Topics[0].ShortID
	require.NoError(t, svc.ManageTopic(ctx, ManageTopicInput{
		Username: "alice", MowingID: "mw-1", Option: "support", CollID: collID,
	}))
	assert.Equal(t, float64(1), stored.Topics[0].Supports)

	require.NoError(t, svc.ManageTopic(ctx, ManageTopicInput{
		Username: "alice", MowingID: "mw-1", Option: "close", CollID: collID,
	}))
	assert.Empty(t, stored.Topics)
}
