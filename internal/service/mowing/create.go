package mowing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// Create registers a new mowing event for the owning profile. The members
// list starts with exactly the creator; the linkage entry and the new
// document are written in one transaction.
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

		if p.HasComponent(input.Title, domain.PathMowing) {
			return fmt.Errorf("mowing %q: %w", input.Title, domain.ErrAlreadyExists)
		}

		sid = shortid.New()
		p.AddComponent(sid, input.Title, domain.PathMowing)

		if err := s.profiles.Replace(txCtx, p); err != nil {
			return fmt.Errorf("link mowing to profile: %w", err)
		}

		m := domain.NewMowing(sid, p, input.Title, input.Category, input.Level,
			input.Square, input.Date, input.Time, input.Region, input.Cords,
			input.Borders, input.Activity)

		if err := s.mowings.Create(txCtx, m); err != nil {
			return fmt.Errorf("create mowing: %w", err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "mowing created",
		slog.String("shortid", sid),
		slog.String("username", input.Username),
	)
	return nil
}
