package resolver

import (
	"context"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/internal/service/forum"
	"github.com/lawndon/lawndon-backend/internal/service/mower"
	"github.com/lawndon/lawndon-backend/internal/service/mowing"
	"github.com/lawndon/lawndon-backend/internal/service/profile"
)

// profileService defines what resolver needs from Profile service.
type profileService interface {
	Register(ctx context.Context, input profile.RegisterInput) (profile.UserCookie, error)
	Login(ctx context.Context, securityCode string) (profile.UserCookie, error)
	GetProfile(ctx context.Context, accountID string) (*domain.Profile, error)
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)
	UpdatePersonalInfo(ctx context.Context, input profile.UpdatePersonalInfoInput) error
	UpdateGeoInfo(ctx context.Context, input profile.UpdateGeoInfoInput) error
	UpdateLawncareInfo(ctx context.Context, input profile.UpdateLawncareInfoInput) error
	UpdateSecurityCode(ctx context.Context, input profile.UpdateSecurityCodeInput) error
	ManageOrder(ctx context.Context, input profile.ManageOrderInput) error
	ManageZone(ctx context.Context, input profile.ManageZoneInput) error
}

// mowerService defines what resolver needs from Mower service.
type mowerService interface {
	Create(ctx context.Context, input mower.CreateInput) error
	GetMower(ctx context.Context, shortID string) (*domain.Mower, error)
	ListMowers(ctx context.Context) ([]*domain.Mower, error)
	MakeReview(ctx context.Context, input mower.MakeReviewInput) error
	UpdateInfo(ctx context.Context, input mower.UpdateInfoInput) error
	ManageOffer(ctx context.Context, input mower.ManageOfferInput) error
}

// mowingService defines what resolver needs from Mowing service.
type mowingService interface {
	Create(ctx context.Context, input mowing.CreateInput) error
	GetMowing(ctx context.Context, shortID string) (*domain.Mowing, error)
	ListMowings(ctx context.Context) ([]*domain.Mowing, error)
	ManageStatus(ctx context.Context, input mowing.ManageStatusInput) error
	UpdatePhoto(ctx context.Context, input mowing.UpdatePhotoInput) error
	ManageTopic(ctx context.Context, input mowing.ManageTopicInput) error
}

// forumService defines what resolver needs from Forum service.
type forumService interface {
	Create(ctx context.Context, input forum.CreateInput) error
	GetForum(ctx context.Context, shortID string) (*domain.Forum, error)
	ListForums(ctx context.Context) ([]*domain.Forum, error)
	ManageImage(ctx context.Context, input forum.ManageImageInput) error
	UpdateProgress(ctx context.Context, input forum.UpdateProgressInput) error
	ManageSource(ctx context.Context, input forum.ManageSourceInput) error
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	profile profileService
	mower   mowerService
	mowing  mowingService
	forum   forumService
	log     *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	profile profileService,
	mower mowerService,
	mowing mowingService,
	forum forumService,
) *Resolver {
	return &Resolver{
		profile: profile,
		mower:   mower,
		mowing:  mowing,
		forum:   forum,
		log:     log.With("component", "graphql"),
	}
}
