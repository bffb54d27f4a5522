package mower

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// Create registers a new mower listing for the owning profile. The owner's
// account_components must not already carry a mower entry with the same
// title; the linkage entry and the new document are written in one
// transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var sid string

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.profiles.GetByOwner(txCtx, input.Username, input.AccountID)
		if err != nil {
			return err
		}

		if p.HasComponent(input.Title, domain.PathMower) {
			return fmt.Errorf("mower %q: %w", input.Title, domain.ErrAlreadyExists)
		}

		sid = shortid.New()
		p.AddComponent(sid, input.Title, domain.PathMower)

		if err := s.profiles.Replace(txCtx, p); err != nil {
			return fmt.Errorf("link mower to profile: %w", err)
		}

		m := domain.NewMower(sid, p, input.Title, input.Category, input.Format,
			input.Country, input.CutSize, input.IsStripe)

		if err := s.mowers.Create(txCtx, m); err != nil {
			return fmt.Errorf("create mower: %w", err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "mower created",
		slog.String("shortid", sid),
		slog.String("username", input.Username),
	)
	return nil
}
