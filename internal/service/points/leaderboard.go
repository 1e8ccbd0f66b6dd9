package points

import (
	"context"
	"fmt"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

// ListGameLeaderboard returns a game's user aggregates ordered by total
// points descending. An uncredited game yields an empty slice.
func (s *Service) ListGameLeaderboard(ctx context.Context, input LeaderboardInput) ([]domain.UserGamePoints, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}

	list, err := s.users.ListByGame(ctx, input.GameID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list game leaderboard: %w", err)
	}
	return list, nil
}
