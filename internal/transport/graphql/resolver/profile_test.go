package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/internal/service/profile"
)

func TestQueryTest(t *testing.T) {
	t.Parallel()

	resolver := &queryResolver{&Resolver{log: testLogger()}}

	result, err := resolver.Test(context.Background())

	require.NoError(t, err)
	require.Equal(t, "Hi", result)
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	mock := &profileServiceMock{
		RegisterFunc: func(ctx context.Context, input profile.RegisterInput) (profile.UserCookie, error) {
			require.Equal(t, "alice", input.Username)
			require.Equal(t, "code-1", input.SecurityCode)
			return profile.UserCookie{AccountID: "acc-1", Username: "alice"}, nil
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	cookie, err := resolver.Register(context.Background(),
		"alice", "code-1", "@alice", "North", domain.Cord{Lat: 1, Long: 2}, "Mon", "")

	require.NoError(t, err)
	require.Equal(t, "acc-1", cookie.AccountID)
	require.Equal(t, "alice", cookie.Username)
}

func TestRegister_TakenUsernamePassesThrough(t *testing.T) {
	t.Parallel()

	mock := &profileServiceMock{
		RegisterFunc: func(ctx context.Context, input profile.RegisterInput) (profile.UserCookie, error) {
			return profile.UserCookie{AccountID: "", Username: input.Username}, nil
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	cookie, err := resolver.Register(context.Background(),
		"taken", "code-1", "", "", domain.Cord{}, "", "")

	require.NoError(t, err)
	require.Empty(t, cookie.AccountID)
	require.Equal(t, "taken", cookie.Username)
}

func TestLogin_UnknownCode(t *testing.T) {
	t.Parallel()

	mock := &profileServiceMock{
		LoginFunc: func(ctx context.Context, securityCode string) (profile.UserCookie, error) {
			return profile.UserCookie{}, nil
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	cookie, err := resolver.Login(context.Background(), "no-such-code")

	require.NoError(t, err)
	require.Empty(t, cookie.AccountID)
	require.Empty(t, cookie.Username)
}

func TestGetProfile_NotFoundReturnsNull(t *testing.T) {
	t.Parallel()

	mock := &profileServiceMock{
		GetProfileFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return nil, domain.ErrNotFound
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	result, err := resolver.GetProfile(context.Background(), "ghost")

	require.NoError(t, err)
	require.Nil(t, result)
}

func TestGetProfiles_IgnoresUsernameArg(t *testing.T) {
	t.Parallel()

	mock := &profileServiceMock{
		ListProfilesFunc: func(ctx context.Context) ([]*domain.Profile, error) {
			return []*domain.Profile{
				{AccountID: "acc-1", Username: "alice"},
				{AccountID: "acc-2", Username: "bob"},
			}, nil
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	result, err := resolver.GetProfiles(context.Background(), "whoever")

	require.NoError(t, err)
	require.Len(t, result, 2)
}

func TestUpdateProfilePersonalInfo_Success(t *testing.T) {
	t.Parallel()

	mock := &profileServiceMock{
		UpdatePersonalInfoFunc: func(ctx context.Context, input profile.UpdatePersonalInfoInput) error {
			require.Equal(t, "acc-1", input.AccountID)
			require.Equal(t, "newname", input.Username)
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	result, err := resolver.UpdateProfilePersonalInfo(context.Background(), "acc-1", "newname", "photo.jpg")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
}

func TestManageProfileOrder_ErrorCollapsesToStatus(t *testing.T) {
	t.Parallel()

	mock := &profileServiceMock{
		ManageOrderFunc: func(ctx context.Context, input profile.ManageOrderInput) error {
			return errors.New("repo down")
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	result, err := resolver.ManageProfileOrder(context.Background(),
		"acc-1", "create", "mow my lawn", 40, 25, "2026-05-01", "")

	require.NoError(t, err)
	require.Equal(t, "Error", result)
}

func TestManageProfileZone_PassesAllFields(t *testing.T) {
	t.Parallel()

	var got profile.ManageZoneInput
	mock := &profileServiceMock{
		ManageZoneFunc: func(ctx context.Context, input profile.ManageZoneInput) error {
			got = input
			return nil
		},
	}
	resolver := &mutationResolver{&Resolver{profile: mock, log: testLogger()}}

	result, err := resolver.ManageProfileZone(context.Background(),
		"acc-1", "create", "Back Yard", "garden", domain.Cord{Lat: 3, Long: 4}, 55, "planned", "zone.jpg", "")

	require.NoError(t, err)
	require.Equal(t, "Success", result)
	require.Equal(t, "acc-1", got.AccountID)
	require.Equal(t, "create", got.Option)
	require.Equal(t, "Back Yard", got.Title)
	require.Equal(t, domain.Cord{Lat: 3, Long: 4}, got.Cords)
	require.Equal(t, 55.0, got.Square)
}
