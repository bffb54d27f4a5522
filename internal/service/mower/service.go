// Package mower implements the equipment-listing business logic: creation
// with owner linkage, info updates, and the review and offer sub-collections.
package mower

import (
	"context"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type profileRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	GetByOwner(ctx context.Context, username, accountID string) (*domain.Profile, error)
	Replace(ctx context.Context, p *domain.Profile) error
}

type mowerRepo interface {
	GetByShortID(ctx context.Context, shortID string) (*domain.Mower, error)
	List(ctx context.Context) ([]*domain.Mower, error)
	Create(ctx context.Context, m *domain.Mower) error
	Replace(ctx context.Context, m *domain.Mower) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the mower business logic.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	mowers   mowerRepo
	tx       txManager
}

// NewService creates a new Mower service.
func NewService(logger *slog.Logger, profiles profileRepo, mowers mowerRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "mower"),
		profiles: profiles,
		mowers:   mowers,
		tx:       tx,
	}
}

// GetMower returns the mower with the given shortid.
func (s *Service) GetMower(ctx context.Context, shortID string) (*domain.Mower, error) {
	return s.mowers.GetByShortID(ctx, shortID)
}

// ListMowers returns every mower.
func (s *Service) ListMowers(ctx context.Context) ([]*domain.Mower, error) {
	return s.mowers.List(ctx)
}
