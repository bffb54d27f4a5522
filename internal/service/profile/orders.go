package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// ManageOrder applies one order operation to the profile and persists the
// whole document. Unknown options fall through to delete.
func (s *Service) ManageOrder(ctx context.Context, input ManageOrderInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	switch input.Option {
	case "create":
		p.AddOrder(shortid.New(), input.Msg, input.Square, input.Cost, input.Date)
	case "accept":
		p.AcceptOrder(input.CollID, input.Cost)
	default:
		p.RemoveOrder(input.CollID)
	}

	if err := s.profiles.Replace(ctx, p); err != nil {
		return fmt.Errorf("manage order: %w", err)
	}

	s.log.DebugContext(ctx, "order managed",
		slog.String("account_id", p.AccountID),
		slog.String("option", input.Option),
	)
	return nil
}
