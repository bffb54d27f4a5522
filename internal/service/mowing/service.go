// Package mowing implements the mowing-event business logic: creation with
// owner linkage, membership changes mirrored into the member profiles, the
// main photo, and the topic sub-collection.
package mowing

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

type mowingRepo interface {
	GetByShortID(ctx context.Context, shortID string) (*domain.Mowing, error)
	List(ctx context.Context) ([]*domain.Mowing, error)
	Create(ctx context.Context, m *domain.Mowing) error
	Replace(ctx context.Context, m *domain.Mowing) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the mowing business logic.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	mowings  mowingRepo
	tx       txManager
}

// NewService creates a new Mowing service.
func NewService(logger *slog.Logger, profiles profileRepo, mowings mowingRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "mowing"),
		profiles: profiles,
		mowings:  mowings,
		tx:       tx,
	}
}

// GetMowing returns the mowing with the given shortid.
func (s *Service) GetMowing(ctx context.Context, shortID string) (*domain.Mowing, error) {
	return s.mowings.GetByShortID(ctx, shortID)
}

// ListMowings returns every mowing.
func (s *Service) ListMowings(ctx context.Context) ([]*domain.Mowing, error) {
	return s.mowings.List(ctx)
}
