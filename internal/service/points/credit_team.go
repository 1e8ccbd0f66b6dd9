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

// CreditTeamPoints replaces a team's game-point aggregate wholesale. Same
// optimistic-retry semantics as CreditUserPoints.
func (s *Service) CreditTeamPoints(ctx context.Context, input CreditTeamPointsInput) (domain.TeamGamePoints, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.TeamGamePoints{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.TeamGamePoints{}, err
	}

	var lastErr error
	for attempt := 0; attempt < s.retries; attempt++ {
		now := time.Now().UTC()

		current, err := s.teams.GetTeam(ctx, input.TeamID, input.GameID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			current = domain.NewTeamGamePoints(input.TeamID, input.GameID, orgID, input.ProjectID, now)
		case err != nil:
			return domain.TeamGamePoints{}, fmt.Errorf("load team game points: %w", err)
		}

		next := current.WithPoints(input.TaskPoints, input.KaizenPoints, now)

		if err := s.teams.UpsertTeam(ctx, next); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				lastErr = err
				continue
			}
			return domain.TeamGamePoints{}, fmt.Errorf("save team game points: %w", err)
		}

		s.log.InfoContext(ctx, "team game points credited",
			slog.String("team_id", input.TeamID.String()),
			slog.String("game_id", input.GameID.String()),
			slog.Float64("total_points", next.TotalPoints),
			slog.Int64("sequence", next.Sequence),
		)
		return next, nil
	}

	return domain.TeamGamePoints{}, fmt.Errorf("credit team game points: retry budget exhausted: %w", lastErr)
}
