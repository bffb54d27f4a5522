package profile

import (
	"context"
	"errors"
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
	GetByAccountIDFunc    func(ctx context.Context, accountID string) (*domain.Profile, error)
	GetByUsernameFunc     func(ctx context.Context, username string) (*domain.Profile, error)
	GetBySecurityCodeFunc func(ctx context.Context, code string) (*domain.Profile, error)
	ListFunc              func(ctx context.Context) ([]*domain.Profile, error)
	CreateFunc            func(ctx context.Context, p *domain.Profile) error
	ReplaceFunc           func(ctx context.Context, p *domain.Profile) error
}

func (m *mockProfileRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.Profile, error) {
	if m.GetByAccountIDFunc != nil {
		return m.GetByAccountIDFunc(ctx, accountID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProfileRepo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProfileRepo) GetBySecurityCode(ctx context.Context, code string) (*domain.Profile, error) {
	if m.GetBySecurityCodeFunc != nil {
		return m.GetBySecurityCodeFunc(ctx, code)
	}
	return nil, domain.ErrNotFound
}

func (m *mockProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepo) Replace(ctx context.Context, p *domain.Profile) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, p)
	}
	return nil
}

func newTestService(repo *mockProfileRepo) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
}

func testProfile() *domain.Profile {
	return domain.NewProfile("acc-1", "alice", "code-1", "@alice", "North",
		domain.Cord{Lat: 1, Long: 2}, "Mon", "")
}

func registerInput() RegisterInput {
	return RegisterInput{
		Username:     "alice",
		SecurityCode: "code-1",
		TelegramTag:  "@alice",
		Region:       "North",
		Cords:        domain.Cord{},
		ActivityDay:  "Mon",
	}
}

// ===========================================================================
// Register / Login
// ===========================================================================

func TestRegister_NewUsername(t *testing.T) {
	var created *domain.Profile
	repo := &mockProfileRepo{
		CreateFunc: func(ctx context.Context, p *domain.Profile) error {
			created = p
			return nil
		},
	}
	svc := newTestService(repo)

	cookie, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, created.AccountID, cookie.AccountID)
	assert.Equal(t, "alice", cookie.Username)
	assert.Equal(t, float64(1), created.Rate)
	assert.Empty(t, created.Orders)
}

func TestRegister_TakenUsername(t *testing.T) {
	createCalled := false
	repo := &mockProfileRepo{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			return testProfile(), nil
		},
		CreateFunc: func(ctx context.Context, p *domain.Profile) error {
			createCalled = true
			return nil
		},
	}
	svc := newTestService(repo)

	cookie, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, UserCookie{AccountID: "", Username: "alice"}, cookie)
	assert.False(t, createCalled)
}

func TestRegister_RaceOnConstraint(t *testing.T) {
	repo := &mockProfileRepo{
		CreateFunc: func(ctx context.Context, p *domain.Profile) error {
			return domain.ErrAlreadyExists
		},
	}
	svc := newTestService(repo)

	cookie, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, UserCookie{AccountID: "", Username: "alice"}, cookie)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(&mockProfileRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin_KnownCode(t *testing.T) {
	repo := &mockProfileRepo{
		GetBySecurityCodeFunc: func(ctx context.Context, code string) (*domain.Profile, error) {
			return testProfile(), nil
		},
	}
	svc := newTestService(repo)

	cookie, err := svc.Login(context.Background(), "code-1")
	require.NoError(t, err)
	assert.Equal(t, UserCookie{AccountID: "acc-1", Username: "alice"}, cookie)
}

func TestLogin_UnknownCode(t *testing.T) {
	svc := newTestService(&mockProfileRepo{})

	cookie, err := svc.Login(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, UserCookie{}, cookie)
}

// ===========================================================================
// Info updates
// ===========================================================================

func TestUpdatePersonalInfo_FreeUsername(t *testing.T) {
	stored := testProfile()
	var replaced *domain.Profile
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replaced = p
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.UpdatePersonalInfo(context.Background(), UpdatePersonalInfoInput{
		AccountID: "acc-1", Username: "alice2", MainPhoto: "new.jpg",
	})
	require.NoError(t, err)

	require.NotNil(t, replaced)
	assert.Equal(t, "alice2", replaced.Username)
	assert.Equal(t, "new.jpg", replaced.MainPhoto)
}

func TestUpdatePersonalInfo_TakenUsernameKeepsOld(t *testing.T) {
	stored := testProfile()
	var replaced *domain.Profile
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.Profile, error) {
			other := testProfile()
			other.AccountID = "acc-2"
			other.Username = username
			return other, nil
		},
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replaced = p
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.UpdatePersonalInfo(context.Background(), UpdatePersonalInfoInput{
		AccountID: "acc-1", Username: "bob", MainPhoto: "new.jpg",
	})
	require.NoError(t, err)

	require.NotNil(t, replaced)
	assert.Equal(t, "alice", replaced.Username)
	assert.Equal(t, "new.jpg", replaced.MainPhoto)
}

func TestUpdateGeoInfo_MissingProfile(t *testing.T) {
	replaceCalled := false
	repo := &mockProfileRepo{
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replaceCalled = true
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.UpdateGeoInfo(context.Background(), UpdateGeoInfoInput{
		AccountID: "ghost", Region: "South",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, replaceCalled)
}

func TestUpdateSecurityCode(t *testing.T) {
	stored := testProfile()
	var replaced *domain.Profile
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replaced = p
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.UpdateSecurityCode(context.Background(), UpdateSecurityCodeInput{
		AccountID: "acc-1", SecurityCode: "rotated",
	})
	require.NoError(t, err)
	assert.Equal(t, "rotated", replaced.SecurityCode)
}

// ===========================================================================
// Orders / zones
// ===========================================================================

func TestManageOrder_AcceptAddsBudgetEveryTime(t *testing.T) {
	stored := testProfile()
	stored.AddOrder("ord-1", "front lawn", 40, 30, "2024-05-01")
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
	}
	svc := newTestService(repo)

	in := ManageOrderInput{AccountID: "acc-1", Option: "accept", Cost: 30, CollID: "ord-1"}

	require.NoError(t, svc.ManageOrder(context.Background(), in))
	assert.True(t, stored.Orders[0].IsAccepted)
	assert.Equal(t, float64(30), stored.Budget)

	require.NoError(t, svc.ManageOrder(context.Background(), in))
	assert.Equal(t, float64(60), stored.Budget)
}

func TestManageOrder_UnknownOptionDeletes(t *testing.T) {
	stored := testProfile()
	stored.AddOrder("ord-1", "front lawn", 40, 30, "2024-05-01")
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
	}
	svc := newTestService(repo)

	err := svc.ManageOrder(context.Background(), ManageOrderInput{
		AccountID: "acc-1", Option: "whatever", CollID: "ord-1",
	})
	require.NoError(t, err)
	assert.Empty(t, stored.Orders)
}

func TestManageOrder_MissingProfile(t *testing.T) {
	replaceCalled := false
	repo := &mockProfileRepo{
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replaceCalled = true
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.ManageOrder(context.Background(), ManageOrderInput{
		AccountID: "ghost", Option: "create",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, replaceCalled)
}

func TestManageZone_CreateDeleteRoundTrip(t *testing.T) {
	stored := testProfile()
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
	}
	svc := newTestService(repo)

	err := svc.ManageZone(context.Background(), ManageZoneInput{
		AccountID: "acc-1", Option: "create", Title: "Front", Category: "lawn", Square: 50,
	})
	require.NoError(t, err)
	require.Len(t, stored.Zones, 1)
	assert.Equal(t, float64(50), stored.AreaSize)

	err = svc.ManageZone(context.Background(), ManageZoneInput{
		AccountID: "acc-1", Option: "delete", CollID: stored.Zones[0].ShortID, Square: 50,
	})
	require.NoError(t, err)
	assert.Empty(t, stored.Zones)
	assert.Equal(t, float64(0), stored.AreaSize)
}

func TestManageZone_UpdateAbsentIsSilent(t *testing.T) {
	stored := testProfile()
	replaceCalled := false
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			replaceCalled = true
			return nil
		},
	}
	svc := newTestService(repo)

	err := svc.ManageZone(context.Background(), ManageZoneInput{
		AccountID: "acc-1", Option: "update", CollID: "missing", Status: "done",
	})
	require.NoError(t, err)
	assert.True(t, replaceCalled)
}

func TestManageZone_ReplaceFails(t *testing.T) {
	stored := testProfile()
	repo := &mockProfileRepo{
		GetByAccountIDFunc: func(ctx context.Context, accountID string) (*domain.Profile, error) {
			return stored, nil
		},
		ReplaceFunc: func(ctx context.Context, p *domain.Profile) error {
			return errors.New("boom")
		},
	}
	svc := newTestService(repo)

	err := svc.ManageZone(context.Background(), ManageZoneInput{
		AccountID: "acc-1", Option: "like", CollID: "z",
	})
	require.Error(t, err)
}
