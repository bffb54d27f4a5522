package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/internal/service/forum"
)

func TestCreateForum_Success(t *testing.T) {
	t.Parallel()

	var got forum.CreateInput
	mock := &forumServiceMock{
		CreateFunc: func(ctx context.Context, input forum.CreateInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{forum: mock, log: testLogger()}}

	result, err := resolver.CreateForum(context.Background(),
		"alice", "acc-1", "Lawn Pros", "tips", "open", "DE",
		"share your lawncare tricks", "active", "North", domain.Cord{Lat: 7, Long: 8})

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "acc-1", got.AccountID)
	require.Equal(t, "Lawn Pros", got.Title)
	require.Equal(t, "share your lawncare tricks", got.Description)
}

func TestGetForum_PassesShortID(t *testing.T) {
	t.Parallel()

	mock := &forumServiceMock{
		GetForumFunc: func(ctx context.Context, shortID string) (*domain.Forum, error) {
			require.Equal(t, "fr-123", shortID)
			return &domain.Forum{ShortID: "fr-123", Title: "Lawn Pros"}, nil
		},
	}
	resolver := &mutationResolver{&Resolver{forum: mock, log: testLogger()}}

	result, err := resolver.GetForum(context.Background(), "ignored", "fr-123")

	require.NoError(t, err)
	require.Equal(t, "Lawn Pros", result.Title)
}

func TestManageForumImage_PassesAllFields(t *testing.T) {
	t.Parallel()

	var got forum.ManageImageInput
	mock := &forumServiceMock{
		ManageImageFunc: func(ctx context.Context, input forum.ManageImageInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{forum: mock, log: testLogger()}}

	result, err := resolver.ManageForumImage(context.Background(),
		"alice", "fr-123", "create", "before and after", "expert", "photo", "new", "img.jpg", "")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "fr-123", got.ForumID)
	require.Equal(t, "before and after", got.Text)
	require.Equal(t, "img.jpg", got.PhotoURL)
}

func TestUpdateForumProgress_ErrorCollapsesToStatus(t *testing.T) {
	t.Parallel()

	mock := &forumServiceMock{
		UpdateProgressFunc: func(ctx context.Context, input forum.UpdateProgressInput) error {
			return errors.New("repo down")
		},
	}
	resolver := &mutationResolver{&Resolver{forum: mock, log: testLogger()}}

	result, err := resolver.UpdateForumProgress(context.Background(), "alice", "fr-123", 42)

	require.NoError(t, err)
	require.Equal(t, "Error", result)
}

func TestManageForumSource_Success(t *testing.T) {
	t.Parallel()

	var got forum.ManageSourceInput
	mock := &forumServiceMock{
		ManageSourceFunc: func(ctx context.Context, input forum.ManageSourceInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{forum: mock, log: testLogger()}}

	result, err := resolver.ManageForumSource(context.Background(),
		"alice", "fr-123", "create", "Mowing 101", "guide", "https://example.com/mowing", "")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "Mowing 101", got.Title)
	require.Equal(t, "https://example.com/mowing", got.URL)
}
