package mowing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// ManageTopic applies one topic operation to the mowing and persists the
// whole document. Unknown options fall through to delete.
func (s *Service) ManageTopic(ctx context.Context, input ManageTopicInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	m, err := s.mowings.GetByShortID(ctx, input.MowingID)
	if err != nil {
		return err
	}

	switch input.Option {
	case "create":
		m.AddTopic(shortid.New(), p.Username, input.Text, input.Category)
	case "support":
		m.SupportTopic(input.CollID)
	default:
		m.RemoveTopic(input.CollID)
	}

	if err := s.mowings.Replace(ctx, m); err != nil {
		return fmt.Errorf("manage topic: %w", err)
	}

	s.log.DebugContext(ctx, "topic managed",
		slog.String("shortid", m.ShortID),
		slog.String("option", input.Option),
	)
	return nil
}
