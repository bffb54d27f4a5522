package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

// UpdatePersonalInfo overwrites the main photo and, when the requested
// username is free, the username. A taken username is skipped silently and
// the rest of the update still applies.
func (s *Service) UpdatePersonalInfo(ctx context.Context, input UpdatePersonalInfoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	username := p.Username
	_, err = s.profiles.GetByUsername(ctx, input.Username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		username = input.Username
	case err != nil:
		return fmt.Errorf("check username: %w", err)
	}

	p.SetPersonalInfo(username, input.MainPhoto)

	if err := s.profiles.Replace(ctx, p); err != nil {
		return fmt.Errorf("update personal info: %w", err)
	}

	s.log.DebugContext(ctx, "personal info updated",
		slog.String("account_id", p.AccountID),
	)
	return nil
}

// UpdateGeoInfo overwrites the region and coordinates.
func (s *Service) UpdateGeoInfo(ctx context.Context, input UpdateGeoInfoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	p.SetGeoInfo(input.Region, input.Cords)

	if err := s.profiles.Replace(ctx, p); err != nil {
		return fmt.Errorf("update geo info: %w", err)
	}
	return nil
}

// UpdateLawncareInfo overwrites the weekly activity day and the rating.
func (s *Service) UpdateLawncareInfo(ctx context.Context, input UpdateLawncareInfoInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	p.SetLawncareInfo(input.ActivityDay, input.Rate)

	if err := s.profiles.Replace(ctx, p); err != nil {
		return fmt.Errorf("update lawncare info: %w", err)
	}
	return nil
}

// UpdateSecurityCode rotates the login code.
func (s *Service) UpdateSecurityCode(ctx context.Context, input UpdateSecurityCodeInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	p, err := s.profiles.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	p.SetSecurityCode(input.SecurityCode)

	if err := s.profiles.Replace(ctx, p); err != nil {
		return fmt.Errorf("update security code: %w", err)
	}

	s.log.InfoContext(ctx, "security code rotated",
		slog.String("account_id", p.AccountID),
	)
	return nil
}
