package points

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// CreditGamePoints adds a delta to a game's running total (kaizen or task,
// selected by Kind). The storage layer applies the delta as a single atomic
// increment, so concurrent credits never lose updates and no retry loop is
// needed here. Returns the post-increment state.
func (s *Service) CreditGamePoints(ctx context.Context, input CreditGamePointsInput) (domain.GamePoints, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.GamePoints{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.GamePoints{}, err
	}

	now := time.Now().UTC()
	identity := domain.NewGamePoints(input.Kind, input.GameID, orgID, input.ProjectID, now)

	out, err := s.games.AddPoints(ctx, identity, input.Delta)
	if err != nil {
		return domain.GamePoints{}, fmt.Errorf("credit game points: %w", err)
	}

	s.log.InfoContext(ctx, "game points credited",
		slog.String("game_id", input.GameID.String()),
		slog.String("kind", string(input.Kind)),
		slog.Float64("delta", input.Delta),
		slog.Float64("points", out.Points),
	)
	return out, nil
}

// GetGamePoints returns a game's running total for the given kind.
func (s *Service) GetGamePoints(ctx context.Context, kind domain.GamePointsKind, gameID uuid.UUID) (domain.GamePoints, error) {
	if !kind.Valid() {
		return domain.GamePoints{}, domain.NewValidationError("kind", "must be KAIZEN or TASK")
	}
	if gameID == uuid.Nil {
		return domain.GamePoints{}, domain.NewValidationError("game_id", "required")
	}

	p, err := s.games.Get(ctx, kind, gameID)
	if err != nil {
		return domain.GamePoints{}, fmt.Errorf("get game points: %w", err)
	}
	return p, nil
}
