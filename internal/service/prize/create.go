package prize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// CreatePrize stores a financial prize for a user, game and period.
//
// Creation is deliberately not idempotent: every call mints a fresh prize ID
// and inserts a new row, even when an identical prize already exists for the
// period. Callers that need at-most-one-per-period (the period-close job)
// check GetPrizeByUserAndPeriod before calling.
func (s *Service) CreatePrize(ctx context.Context, input CreatePrizeInput) (domain.FinancialPrize, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.FinancialPrize{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.FinancialPrize{}, err
	}

	period, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return domain.FinancialPrize{}, err
	}

	p := domain.NewFinancialPrize(orgID, input.ProjectID, input.GameID, input.UserID,
		input.Amount, period, input.Details, time.Now().UTC())

	if err := s.prizes.Create(ctx, p); err != nil {
		return domain.FinancialPrize{}, fmt.Errorf("create financial prize: %w", err)
	}

	s.log.InfoContext(ctx, "financial prize created",
		slog.String("prize_id", p.ID.String()),
		slog.String("user_id", p.UserID.String()),
		slog.String("game_id", p.GameID.String()),
		slog.String("period", p.Period.String()),
		slog.String("amount", p.Amount.String()),
	)
	return p, nil
}
