package mowing

import (
	"context"
	"fmt"
)

// UpdatePhoto overwrites the main photo. The calling profile must exist
// even though only the mowing document changes.
func (s *Service) UpdatePhoto(ctx context.Context, input UpdatePhotoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.profiles.GetByUsername(ctx, input.Username); err != nil {
		return err
	}

	m, err := s.mowings.GetByShortID(ctx, input.MowingID)
	if err != nil {
		return err
	}

	m.SetMainPhoto(input.MainPhoto)

	if err := s.mowings.Replace(ctx, m); err != nil {
		return fmt.Errorf("update mowing photo: %w", err)
	}
	return nil
}
