// Package profile implements the account business logic: registration,
// login by security code, profile info updates, and the order and zone
// sub-collections.
package profile

import (
	"context"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	GetByAccountID(ctx context.Context, accountID string) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	GetBySecurityCode(ctx context.Context, code string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
	Replace(ctx context.Context, p *domain.Profile) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the profile business logic.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new Profile service.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}

// GetProfile returns the profile with the given account id.
func (s *Service) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	return s.profiles.GetByAccountID(ctx, accountID)
}

// ListProfiles returns every profile.
func (s *Service) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}
