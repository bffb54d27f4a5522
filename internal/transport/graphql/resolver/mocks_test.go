package resolver

import (
	"context"
	"io"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/internal/service/forum"
	"github.com/lawndon/lawndon-backend/internal/service/mower"
	"github.com/lawndon/lawndon-backend/internal/service/mowing"
	"github.com/lawndon/lawndon-backend/internal/service/profile"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Hand-rolled mocks with func fields, one per service interface. Unset
// funcs panic, which makes unexpected calls fail the test loudly.

type profileServiceMock struct {
	RegisterFunc           func(ctx context.Context, input profile.RegisterInput) (profile.UserCookie, error)
	LoginFunc              func(ctx context.Context, securityCode string) (profile.UserCookie, error)
	GetProfileFunc         func(ctx context.Context, accountID string) (*domain.Profile, error)
	ListProfilesFunc       func(ctx context.Context) ([]*domain.Profile, error)
	UpdatePersonalInfoFunc func(ctx context.Context, input profile.UpdatePersonalInfoInput) error
	UpdateGeoInfoFunc      func(ctx context.Context, input profile.UpdateGeoInfoInput) error
	UpdateLawncareInfoFunc func(ctx context.Context, input profile.UpdateLawncareInfoInput) error
	UpdateSecurityCodeFunc func(ctx context.Context, input profile.UpdateSecurityCodeInput) error
	ManageOrderFunc        func(ctx context.Context, input profile.ManageOrderInput) error
	ManageZoneFunc         func(ctx context.Context, input profile.ManageZoneInput) error
}

func (m *profileServiceMock) Register(ctx context.Context, input profile.RegisterInput) (profile.UserCookie, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *profileServiceMock) Login(ctx context.Context, securityCode string) (profile.UserCookie, error) {
	return m.LoginFunc(ctx, securityCode)
}

func (m *profileServiceMock) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	return m.GetProfileFunc(ctx, accountID)
}

func (m *profileServiceMock) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return m.ListProfilesFunc(ctx)
}

func (m *profileServiceMock) UpdatePersonalInfo(ctx context.Context, input profile.UpdatePersonalInfoInput) error {
	return m.UpdatePersonalInfoFunc(ctx, input)
}

func (m *profileServiceMock) UpdateGeoInfo(ctx context.Context, input profile.UpdateGeoInfoInput) error {
	return m.UpdateGeoInfoFunc(ctx, input)
}

func (m *profileServiceMock) UpdateLawncareInfo(ctx context.Context, input profile.UpdateLawncareInfoInput) error {
	return m.UpdateLawncareInfoFunc(ctx, input)
}

func (m *profileServiceMock) UpdateSecurityCode(ctx context.Context, input profile.UpdateSecurityCodeInput) error {
	return m.UpdateSecurityCodeFunc(ctx, input)
}

func (m *profileServiceMock) ManageOrder(ctx context.Context, input profile.ManageOrderInput) error {
	return m.ManageOrderFunc(ctx, input)
}

func (m *profileServiceMock) ManageZone(ctx context.Context, input profile.ManageZoneInput) error {
	return m.ManageZoneFunc(ctx, input)
}

type mowerServiceMock struct {
	CreateFunc      func(ctx context.Context, input mower.CreateInput) error
	GetMowerFunc    func(ctx context.Context, shortID string) (*domain.Mower, error)
	ListMowersFunc  func(ctx context.Context) ([]*domain.Mower, error)
	MakeReviewFunc  func(ctx context.Context, input mower.MakeReviewInput) error
	UpdateInfoFunc  func(ctx context.Context, input mower.UpdateInfoInput) error
	ManageOfferFunc func(ctx context.Context, input mower.ManageOfferInput) error
}

func (m *mowerServiceMock) Create(ctx context.Context, input mower.CreateInput) error {
	return m.CreateFunc(ctx, input)
}

func (m *mowerServiceMock) GetMower(ctx context.Context, shortID string) (*domain.Mower, error) {
	return m.GetMowerFunc(ctx, shortID)
}

func (m *mowerServiceMock) ListMowers(ctx context.Context) ([]*domain.Mower, error) {
	return m.ListMowersFunc(ctx)
}

func (m *mowerServiceMock) MakeReview(ctx context.Context, input mower.MakeReviewInput) error {
	return m.MakeReviewFunc(ctx, input)
}

func (m *mowerServiceMock) UpdateInfo(ctx context.Context, input mower.UpdateInfoInput) error {
	return m.UpdateInfoFunc(ctx, input)
}

func (m *mowerServiceMock) ManageOffer(ctx context.Context, input mower.ManageOfferInput) error {
	return m.ManageOfferFunc(ctx, input)
}

type mowingServiceMock struct {
	CreateFunc       func(ctx context.Context, input mowing.CreateInput) error
	GetMowingFunc    func(ctx context.Context, shortID string) (*domain.Mowing, error)
	ListMowingsFunc  func(ctx context.Context) ([]*domain.Mowing, error)
	ManageStatusFunc func(ctx context.Context, input mowing.ManageStatusInput) error
	UpdatePhotoFunc  func(ctx context.Context, input mowing.UpdatePhotoInput) error
	ManageTopicFunc  func(ctx context.Context, input mowing.ManageTopicInput) error
}

func (m *mowingServiceMock) Create(ctx context.Context, input mowing.CreateInput) error {
	return m.CreateFunc(ctx, input)
}

func (m *mowingServiceMock) GetMowing(ctx context.Context, shortID string) (*domain.Mowing, error) {
	return m.GetMowingFunc(ctx, shortID)
}

func (m *mowingServiceMock) ListMowings(ctx context.Context) ([]*domain.Mowing, error) {
	return m.ListMowingsFunc(ctx)
}

func (m *mowingServiceMock) ManageStatus(ctx context.Context, input mowing.ManageStatusInput) error {
	return m.ManageStatusFunc(ctx, input)
}

func (m *mowingServiceMock) UpdatePhoto(ctx context.Context, input mowing.UpdatePhotoInput) error {
	return m.UpdatePhotoFunc(ctx, input)
}

func (m *mowingServiceMock) ManageTopic(ctx context.Context, input mowing.ManageTopicInput) error {
	return m.ManageTopicFunc(ctx, input)
}

type forumServiceMock struct {
	CreateFunc         func(ctx context.Context, input forum.CreateInput) error
	GetForumFunc       func(ctx context.Context, shortID string) (*domain.Forum, error)
	ListForumsFunc     func(ctx context.Context) ([]*domain.Forum, error)
	ManageImageFunc    func(ctx context.Context, input forum.ManageImageInput) error
	UpdateProgressFunc func(ctx context.Context, input forum.UpdateProgressInput) error
	ManageSourceFunc   func(ctx context.Context, input forum.ManageSourceInput) error
}

func (m *forumServiceMock) Create(ctx context.Context, input forum.CreateInput) error {
	return m.CreateFunc(ctx, input)
}

func (m *forumServiceMock) GetForum(ctx context.Context, shortID string) (*domain.Forum, error) {
	return m.GetForumFunc(ctx, shortID)
}

func (m *forumServiceMock) ListForums(ctx context.Context) ([]*domain.Forum, error) {
	return m.ListForumsFunc(ctx)
}

func (m *forumServiceMock) ManageImage(ctx context.Context, input forum.ManageImageInput) error {
	return m.ManageImageFunc(ctx, input)
}

func (m *forumServiceMock) UpdateProgress(ctx context.Context, input forum.UpdateProgressInput) error {
	return m.UpdateProgressFunc(ctx, input)
}

func (m *forumServiceMock) ManageSource(ctx context.Context, input forum.ManageSourceInput) error {
	return m.ManageSourceFunc(ctx, input)
}
