package forum

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// ManageImage applies one image operation to the forum and persists the
// whole document. Update only rewrites the status; every other field is
// frozen at creation. Unknown options fall through to delete.
func (s *Service) ManageImage(ctx context.Context, input ManageImageInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.profiles.GetByUsername(ctx, input.Username); err != nil {
		return err
	}

	f, err := s.forums.GetByShortID(ctx, input.ForumID)
	if err != nil {
		return err
	}

	switch input.Option {
	case "create":
		f.AddImage(shortid.New(), input.Text, input.Level, input.Format,
			input.Status, input.PhotoURL)
	case "update":
		f.UpdateImage(input.CollID, input.Status)
	default:
		f.RemoveImage(input.CollID)
	}

	if err := s.forums.Replace(ctx, f); err != nil {
		return fmt.Errorf("manage image: %w", err)
	}

	s.log.DebugContext(ctx, "image managed",
		slog.String("shortid", f.ShortID),
		slog.String("option", input.Option),
	)
	return nil
}
