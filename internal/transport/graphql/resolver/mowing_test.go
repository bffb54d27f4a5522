package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/internal/service/mowing"
)

func TestCreateMowing_DereferencesBorders(t *testing.T) {
	t.Parallel()

	var got mowing.CreateInput
	mock := &mowingServiceMock{
		CreateFunc: func(ctx context.Context, input mowing.CreateInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{mowing: mock, log: testLogger()}}

	borders := []*domain.Cord{{Lat: 1, Long: 1}, {Lat: 2, Long: 2}, nil}
	result, err := resolver.CreateMowing(context.Background(),
		"alice", "acc-1", "Park Cleanup", "community", "easy", 400,
		"2026-06-01", "morning", "North", domain.Cord{Lat: 1.5, Long: 1.5}, borders, "ready")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, []domain.Cord{{Lat: 1, Long: 1}, {Lat: 2, Long: 2}}, got.Borders)
	require.Equal(t, "morning", got.Time)
	require.Equal(t, "ready", got.Activity)
}

func TestManageMowingStatus_PassesOption(t *testing.T) {
	t.Parallel()

	var got mowing.ManageStatusInput
	mock := &mowingServiceMock{
		ManageStatusFunc: func(ctx context.Context, input mowing.ManageStatusInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{mowing: mock, log: testLogger()}}

	result, err := resolver.ManageMowingStatus(context.Background(),
		"bob", "mo-123", "join", "ready")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "bob", got.Username)
	require.Equal(t, "mo-123", got.MowingID)
	require.Equal(t, "join", got.Option)
}

func TestManageMowingStatus_MissingMowingCollapsesToError(t *testing.T) {
	t.Parallel()

	mock := &mowingServiceMock{
		ManageStatusFunc: func(ctx context.Context, input mowing.ManageStatusInput) error {
			return domain.ErrNotFound
		},
	}
	resolver := &mutationResolver{&Resolver{mowing: mock, log: testLogger()}}

	result, err := resolver.ManageMowingStatus(context.Background(),
		"bob", "ghost", "join", "ready")

	require.NoError(t, err)
	require.Equal(t, "Error", result)
}

func TestGetMowings_IgnoresUsernameArg(t *testing.T) {
	t.Parallel()

	mock := &mowingServiceMock{
		ListMowingsFunc: func(ctx context.Context) ([]*domain.Mowing, error) {
			return []*domain.Mowing{{ShortID: "mo-1"}, {ShortID: "mo-2"}}, nil
		},
	}
	resolver := &mutationResolver{&Resolver{mowing: mock, log: testLogger()}}

	result, err := resolver.GetMowings(context.Background(), "whoever")

	require.NoError(t, err)
	require.Len(t, result, 2)
}

func TestManageMowingTopic_PassesAllFields(t *testing.T) {
	t.Parallel()

	var got mowing.ManageTopicInput
	mock := &mowingServiceMock{
		ManageTopicFunc: func(ctx context.Context, input mowing.ManageTopicInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{mowing: mock, log: testLogger()}}

	result, err := resolver.ManageMowingTopic(context.Background(),
		"alice", "mo-123", "create", "bring rakes", "logistics", "")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "bring rakes", got.Text)
	require.Equal(t, "logistics", got.Category)
}
