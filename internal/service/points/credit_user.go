package points

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// CreditUserPoints replaces a user's game-point aggregate wholesale with the
// given task and kaizen values. The aggregate is created on first credit.
//
// The write is guarded by an optimistic check on the aggregate sequence; a
// lost race reloads the current state and re-applies the replacement, up to
// the configured retry budget. The final conflict surfaces as
// domain.ErrConflict.
func (s *Service) CreditUserPoints(ctx context.Context, input CreditUserPointsInput) (domain.UserGamePoints, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.UserGamePoints{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.UserGamePoints{}, err
	}

	var lastErr error
	for attempt := 0; attempt < s.retries; attempt++ {
		now := time.Now().UTC()

		current, err := s.users.GetUser(ctx, input.UserID, input.GameID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			current = domain.NewUserGamePoints(input.UserID, input.GameID, orgID, input.ProjectID, now)
		case err != nil:
			return domain.UserGamePoints{}, fmt.Errorf("load user game points: %w", err)
		}

		next := current.WithPoints(input.TaskPoints, input.KaizenPoints, now)

		if err := s.users.UpsertUser(ctx, next); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				lastErr = err
				continue
			}
			return domain.UserGamePoints{}, fmt.Errorf("save user game points: %w", err)
		}

		s.log.InfoContext(ctx, "user game points credited",
			slog.String("user_id", input.UserID.String()),
			slog.String("game_id", input.GameID.String()),
			slog.Float64("total_points", next.TotalPoints),
			slog.Int64("sequence", next.Sequence),
		)
		return next, nil
	}

	return domain.UserGamePoints{}, fmt.Errorf("credit user game points: retry budget exhausted: %w", lastErr)
}

// GetUserPoints returns a user's aggregate for a game.
func (s *Service) GetUserPoints(ctx context.Context, input GetUserPointsInput) (domain.UserGamePoints, error) {
	if err := input.Validate(); err != nil {
		return domain.UserGamePoints{}, err
	}

	p, err := s.users.GetUser(ctx, input.UserID, input.GameID)
	if err != nil {
		return domain.UserGamePoints{}, fmt.Errorf("get user game points: %w", err)
	}
	return p, nil
}
