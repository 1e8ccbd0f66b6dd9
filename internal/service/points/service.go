// Package points implements the point-crediting use-cases: wholesale
// replacement of user and team aggregates and additive credits to the
// per-game running totals.
package points

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 200
)

type userPointsRepo interface {
	GetUser(ctx context.Context, userID, gameID uuid.UUID) (domain.UserGamePoints, error)
	UpsertUser(ctx context.Context, p domain.UserGamePoints) error
	ListByGame(ctx context.Context, gameID uuid.UUID, limit, offset int) ([]domain.UserGamePoints, error)
}

type teamPointsRepo interface {
	GetTeam(ctx context.Context, teamID, gameID uuid.UUID) (domain.TeamGamePoints, error)
	UpsertTeam(ctx context.Context, p domain.TeamGamePoints) error
}

type gamePointsRepo interface {
	AddPoints(ctx context.Context, p domain.GamePoints, delta float64) (domain.GamePoints, error)
	Get(ctx context.Context, kind domain.GamePointsKind, gameID uuid.UUID) (domain.GamePoints, error)
}

// Service provides point-crediting operations.
type Service struct {
	users   userPointsRepo
	teams   teamPointsRepo
	games   gamePointsRepo
	retries int
	log     *slog.Logger
}

// NewService creates a new Points service. retries bounds how many times a
// wholesale replacement is re-applied after losing an optimistic-concurrency
// race; values below 1 are clamped to 1.
func NewService(
	log *slog.Logger,
	users userPointsRepo,
	teams teamPointsRepo,
	games gamePointsRepo,
	retries int,
) *Service {
	if retries < 1 {
		retries = 1
	}
	return &Service{
		users:   users,
		teams:   teams,
		games:   games,
		retries: retries,
		log:     log.With("service", "points"),
	}
}
