package forum

import (
	"context"
	"fmt"
)

// UpdateProgress overwrites the progress value. The calling profile must
// exist even though only the forum document changes.
func (s *Service) UpdateProgress(ctx context.Context, input UpdateProgressInput) error {
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

	f.SetProgress(input.Progress)

	if err := s.forums.Replace(ctx, f); err != nil {
		return fmt.Errorf("update forum progress: %w", err)
	}
	return nil
}
