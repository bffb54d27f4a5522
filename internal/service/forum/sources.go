package forum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// ManageSource applies one source operation to the forum and persists the
// whole document. Unknown options fall through to delete.
func (s *Service) ManageSource(ctx context.Context, input ManageSourceInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	f, err := s.forums.GetByShortID(ctx, input.ForumID)
	if err != nil {
		return err
	}

	switch input.Option {
	case "create":
		f.AddSource(shortid.New(), p.Username, input.Title, input.Category, input.URL)
	case "like":
		f.LikeSource(input.CollID)
	default:
		f.RemoveSource(input.CollID)
	}

	if err := s.forums.Replace(ctx, f); err != nil {
		return fmt.Errorf("manage source: %w", err)
	}

	s.log.DebugContext(ctx, "source managed",
		slog.String("shortid", f.ShortID),
		slog.String("option", input.Option),
	)
	return nil
}
