package mower

import (
	"context"
	"fmt"
)

// UpdateInfo overwrites the external link and main photo. The calling
// profile must exist even though only the mower document changes.
func (s *Service) UpdateInfo(ctx context.Context, input UpdateInfoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.profiles.GetByUsername(ctx, input.Username); err != nil {
		return err
	}

	m, err := s.mowers.GetByShortID(ctx, input.MowerID)
	if err != nil {
		return err
	}

	m.SetInfo(input.Link, input.MainPhoto)

	if err := s.mowers.Replace(ctx, m); err != nil {
		return fmt.Errorf("update mower info: %w", err)
	}
	return nil
}
