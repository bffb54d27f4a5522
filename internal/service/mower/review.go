package mower

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// MakeReview appends a review authored by the calling profile. Both the
// profile and the mower must exist; the review list caps at its limit with
// the oldest entry evicted.
func (s *Service) MakeReview(ctx context.Context, input MakeReviewInput) error {
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

	m.AddReview(shortid.New(), p.Username, input.Content, input.Test, input.Rate)

	if err := s.mowers.Replace(ctx, m); err != nil {
		return fmt.Errorf("make review: %w", err)
	}

	s.log.DebugContext(ctx, "review added",
		slog.String("shortid", m.ShortID),
		slog.String("username", p.Username),
	)
	return nil
}
