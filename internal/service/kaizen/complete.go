package kaizen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// CompleteKaizen transitions a kaizen from ACTIVE to DONE.
func (s *Service) CompleteKaizen(ctx context.Context, input CompleteKaizenInput) (domain.Kaizen, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.Kaizen{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Kaizen{}, err
	}

	current, err := s.kaizens.GetByID(ctx, orgID, input.KaizenID)
	if err != nil {
		return domain.Kaizen{}, fmt.Errorf("load kaizen: %w", err)
	}

	done, err := current.Complete(time.Now().UTC())
	if err != nil {
		return domain.Kaizen{}, err
	}

	if err := s.kaizens.Update(ctx, done); err != nil {
		return domain.Kaizen{}, fmt.Errorf("save kaizen: %w", err)
	}

	s.log.InfoContext(ctx, "kaizen completed",
		slog.String("kaizen_id", done.ID.String()),
		slog.String("game_id", done.GameID.String()),
	)
	return done, nil
}
