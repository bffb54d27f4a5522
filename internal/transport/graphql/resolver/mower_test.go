package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/internal/service/mower"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/dataloader"
)

func TestCreateMower_Success(t *testing.T) {
	t.Parallel()

	var got mower.CreateInput
	mock := &mowerServiceMock{
		CreateFunc: func(ctx context.Context, input mower.CreateInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{mower: mock, log: testLogger()}}

	result, err := resolver.CreateMower(context.Background(),
		"alice", "acc-1", "Robo X200", "robotic", "electric", "DE", 32, true)

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "acc-1", got.AccountID)
	require.Equal(t, "Robo X200", got.Title)
	require.Equal(t, 32.0, got.CutSize)
	require.True(t, got.IsStripe)
}

func TestCreateMower_DuplicateCollapsesToError(t *testing.T) {
	t.Parallel()

	mock := &mowerServiceMock{
		CreateFunc: func(ctx context.Context, input mower.CreateInput) error {
			return domain.ErrAlreadyExists
		},
	}
	resolver := &mutationResolver{&Resolver{mower: mock, log: testLogger()}}

	result, err := resolver.CreateMower(context.Background(),
		"alice", "acc-1", "Robo X200", "robotic", "electric", "DE", 32, true)

	require.NoError(t, err)
	require.Equal(t, "Error", result)
}

func TestGetMower_PassesShortID(t *testing.T) {
	t.Parallel()

	mock := &mowerServiceMock{
		GetMowerFunc: func(ctx context.Context, shortID string) (*domain.Mower, error) {
			require.Equal(t, "mw-123", shortID)
			return &domain.Mower{ShortID: "mw-123", Title: "Robo X200"}, nil
		},
	}
	resolver := &mutationResolver{&Resolver{mower: mock, log: testLogger()}}

	result, err := resolver.GetMower(context.Background(), "ignored", "mw-123")

	require.NoError(t, err)
	require.Equal(t, "Robo X200", result.Title)
}

func TestMakeMowerReview_ErrorCollapsesToStatus(t *testing.T) {
	t.Parallel()

	mock := &mowerServiceMock{
		MakeReviewFunc: func(ctx context.Context, input mower.MakeReviewInput) error {
			return errors.New("repo down")
		},
	}
	resolver := &mutationResolver{&Resolver{mower: mock, log: testLogger()}}

	result, err := resolver.MakeMowerReview(context.Background(),
		"alice", "mw-123", "great cut", "passed", 4.5)

	require.NoError(t, err)
	require.Equal(t, "Error", result)
}

func TestManageMowerOffer_PassesAllFields(t *testing.T) {
	t.Parallel()

	var got mower.ManageOfferInput
	mock := &mowerServiceMock{
		ManageOfferFunc: func(ctx context.Context, input mower.ManageOfferInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{mower: mock, log: testLogger()}}

	result, err := resolver.ManageMowerOffer(context.Background(),
		"alice", "mw-123", "create", "GreenMart", "online", 299, domain.Cord{Lat: 5, Long: 6}, "")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "mw-123", got.MowerID)
	require.Equal(t, "GreenMart", got.Marketplace)
	require.Equal(t, 299.0, got.Cost)
}

func TestMowerOwner_LoadsProfileThroughLoader(t *testing.T) {
	t.Parallel()

	repo := &ownerRepoMock{
		profiles: []*domain.Profile{{AccountID: "acc-1", Username: "alice"}},
	}
	ctx := dataloader.WithLoaders(context.Background(),
		dataloader.NewLoaders(&dataloader.Repos{Profile: repo}))

	resolver := &mowerResolver{&Resolver{log: testLogger()}}

	owner, err := resolver.Owner(ctx, &domain.Mower{ShortID: "mw-123", AccountID: "acc-1"})

	require.NoError(t, err)
	require.Equal(t, "alice", owner.Username)
}

type ownerRepoMock struct {
	profiles []*domain.Profile
}

func (m *ownerRepoMock) GetByAccountIDs(_ context.Context, _ []string) ([]*domain.Profile, error) {
	return m.profiles, nil
}
