package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lawndon/lawndon-backend/internal/domain"
	"github.com/lawndon/lawndon-backend/pkg/shortid"
)

// Register creates a new account. When the username is already taken the
// returned cookie carries an empty account id next to the requested
// username and no document is written; the caller sees no error.
func (s *Service) Register(ctx context.Context, input RegisterInput) (UserCookie, error) {
	if err := input.Validate(); err != nil {
		return UserCookie{}, err
	}

	taken := UserCookie{AccountID: "", Username: input.Username}

	_, err := s.profiles.GetByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return taken, nil
	case !errors.Is(err, domain.ErrNotFound):
		return UserCookie{}, fmt.Errorf("check username: %w", err)
	}

	p := domain.NewProfile(
		shortid.New(),
		input.Username,
		input.SecurityCode,
		input.TelegramTag,
		input.Region,
		input.Cords,
		input.ActivityDay,
		input.MainPhoto,
	)

	if err := s.profiles.Create(ctx, p); err != nil {
		// Lost the race on the unique constraint.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return taken, nil
		}
		return UserCookie{}, fmt.Errorf("create profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile registered",
		slog.String("account_id", p.AccountID),
		slog.String("username", p.Username),
	)

	return UserCookie{AccountID: p.AccountID, Username: p.Username}, nil
}
