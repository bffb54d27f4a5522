package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// ManageZone applies one zone operation to the profile and persists the
// whole document. Create and delete adjust the running area total; update
// and like are silent no-ops when the zone id is absent.
func (s *Service) ManageZone(ctx context.Context, input ManageZoneInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	switch input.Option {
	case "create":
		p.AddZone(shortid.New(), input.Title, input.Category, input.Cords,
			input.Square, input.Status, input.PhotoURL)
	case "delete":
		p.RemoveZone(input.CollID, input.Square)
	case "update":
		p.UpdateZone(input.CollID, input.Status, input.PhotoURL)
	case "like":
		p.LikeZone(input.CollID)
	}

	if err := s.profiles.Replace(ctx, p); err != nil {
		return fmt.Errorf("manage zone: %w", err)
	}

	s.log.DebugContext(ctx, "zone managed",
		slog.String("account_id", p.AccountID),
		slog.String("option", input.Option),
	)
	return nil
}
