package mowing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

// ManageStatus applies one membership operation. Join and leave touch both
// the caller's profile (linkage entry keyed by the mowing's shortid) and
// the mowing's member list (keyed by account id); both documents are
// written in one transaction. Update only rewrites the caller's activity
// state but still persists both documents.
func (s *Service) ManageStatus(ctx context.Context, input ManageStatusInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.profiles.GetByUsername(txCtx, input.Username)
		if err != nil {
			return err
		}

		m, err := s.mowings.GetByShortID(txCtx, input.MowingID)
		if err != nil {
			return err
		}

		switch input.Option {
		case "join":
			p.AddComponent(m.ShortID, m.Title, domain.PathMowing)
			m.Join(p, input.Activity)
		case "update":
			m.UpdateMember(p.AccountID, input.Activity)
		default:
			p.RemoveComponent(m.ShortID)
			m.Leave(p.AccountID)
		}

		if err := s.profiles.Replace(txCtx, p); err != nil {
			return fmt.Errorf("update member profile: %w", err)
		}
		if err := s.mowings.Replace(txCtx, m); err != nil {
			return fmt.Errorf("update mowing members: %w", err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "membership managed",
		slog.String("shortid", input.MowingID),
		slog.String("username", input.Username),
		slog.String("option", input.Option),
	)
	return nil
}
