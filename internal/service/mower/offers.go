package mower

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// ManageOffer applies one offer operation to the mower and persists the
// whole document. Unknown options fall through to delete.
func (s *Service) ManageOffer(ctx context.Context, input ManageOfferInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	m, err := s.mowers.GetByShortID(ctx, input.MowerID)
	if err != nil {
		return err
	}

	switch input.Option {
	case "create":
		m.AddOffer(shortid.New(), p.Username, input.Marketplace, input.Format,
			input.Cost, input.Cords)
	case "like":
		m.LikeOffer(input.CollID)
	default:
		m.RemoveOffer(input.CollID)
	}

	if err := s.mowers.Replace(ctx, m); err != nil {
		return fmt.Errorf("manage offer: %w", err)
	}

	s.log.DebugContext(ctx, "offer managed",
		slog.String("shortid", m.ShortID),
		slog.String("option", input.Option),
	)
	return nil
}
