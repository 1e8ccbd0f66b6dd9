// Package prize implements the financial-prize use-cases: write-once prize
// creation and the read paths over stored prizes.
package prize

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type prizeRepo interface {
	Create(ctx context.Context, p domain.FinancialPrize) error
	GetByUserAndPeriod(ctx context.Context, userID, gameID uuid.UUID, period domain.Period) (domain.FinancialPrize, error)
	ListByGameAndPeriod(ctx context.Context, gameID uuid.UUID, period domain.Period) ([]domain.FinancialPrize, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.FinancialPrize, error)
}

// Service provides financial-prize operations.
type Service struct {
	prizes prizeRepo
	log    *slog.Logger
}

// NewService creates a new Prize service.
func NewService(log *slog.Logger, prizes prizeRepo) *Service {
	return &Service{
		prizes: prizes,
		log:    log.With("service", "prize"),
	}
}
