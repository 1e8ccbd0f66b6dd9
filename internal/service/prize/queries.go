package prize

import (
	"context"
	"fmt"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

// GetPrizeByUserAndPeriod returns the most recently calculated prize for a
// user, game and period. Returns domain.ErrNotFound when none exists.
func (s *Service) GetPrizeByUserAndPeriod(ctx context.Context, input GetPrizeInput) (domain.FinancialPrize, error) {
	if err := input.Validate(); err != nil {
		return domain.FinancialPrize{}, err
	}

	period, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return domain.FinancialPrize{}, err
	}

	p, err := s.prizes.GetByUserAndPeriod(ctx, input.UserID, input.GameID, period)
	if err != nil {
		return domain.FinancialPrize{}, fmt.Errorf("get financial prize: %w", err)
	}
	return p, nil
}

// ListPrizesByGameAndPeriod returns all prizes of a game for a period,
// largest amount first.
func (s *Service) ListPrizesByGameAndPeriod(ctx context.Context, input ListGamePrizesInput) ([]domain.FinancialPrize, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	period, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	list, err := s.prizes.ListByGameAndPeriod(ctx, input.GameID, period)
	if err != nil {
		return nil, fmt.Errorf("list game prizes: %w", err)
	}
	return list, nil
}

// ListUserPrizes returns a user's prize history, newest first.
func (s *Service) ListUserPrizes(ctx context.Context, input ListUserPrizesInput) ([]domain.FinancialPrize, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	list, err := s.prizes.ListByUser(ctx, input.UserID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list user prizes: %w", err)
	}
	return list, nil
}
