package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/lawndon/lawndon-backend/internal/domain"
)

// Login resolves a security code to the owning account. An unknown code
// yields a cookie with both fields empty and no error.
func (s *Service) Login(ctx context.Context, securityCode string) (UserCookie, error) {
	if securityCode == "" {
		return UserCookie{}, domain.NewValidationError("security_code", "required")
	}

	p, err := s.profiles.GetBySecurityCode(ctx, securityCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UserCookie{}, nil
		}
		return UserCookie{}, fmt.Errorf("login: %w", err)
	}

	return UserCookie{AccountID: p.AccountID, Username: p.Username}, nil
}
