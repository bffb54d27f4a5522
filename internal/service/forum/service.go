// Package forum implements the community-forum business logic: creation
// with owner linkage, progress updates, and the image and source
// sub-collections.
package forum

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

type forumRepo interface {
	GetByShortID(ctx context.Context, shortID string) (*domain.Forum, error)
	List(ctx context.Context) ([]*domain.Forum, error)
	Create(ctx context.Context, f *domain.Forum) error
	Replace(ctx context.Context, f *domain.Forum) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the forum business logic.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	forums   forumRepo
	tx       txManager
}

// NewService creates a new Forum service.
func NewService(logger *slog.Logger, profiles profileRepo, forums forumRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "forum"),
		profiles: profiles,
		forums:   forums,
		tx:       tx,
	}
}

// GetForum returns the forum with the given shortid.
func (s *Service) GetForum(ctx context.Context, shortID string) (*domain.Forum, error) {
	return s.forums.GetByShortID(ctx, shortID)
}

// ListForums returns every forum.
func (s *Service) ListForums(ctx context.Context) ([]*domain.Forum, error) {
	return s.forums.List(ctx)
}
