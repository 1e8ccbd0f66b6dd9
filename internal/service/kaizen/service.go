// Package kaizen implements the kaizen lifecycle use-cases (approval,
// completion) and kaizen-type management.
package kaizen

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

type kaizenRepo interface {
	Create(ctx context.Context, k domain.Kaizen) error
	GetByID(ctx context.Context, organizationID, id uuid.UUID) (domain.Kaizen, error)
	Update(ctx context.Context, k domain.Kaizen) error
	ListByGame(ctx context.Context, gameID uuid.UUID, status *domain.KaizenStatus, limit, offset int) ([]domain.Kaizen, error)
}

type kaizenTypeRepo interface {
	Create(ctx context.Context, t domain.KaizenType) error
	GetByID(ctx context.Context, organizationID, id uuid.UUID) (domain.KaizenType, error)
	Update(ctx context.Context, t domain.KaizenType) error
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]domain.KaizenType, error)
}

type gamePointsCreditor interface {
	AddPoints(ctx context.Context, p domain.GamePoints, delta float64) (domain.GamePoints, error)
}

type notificationCreator interface {
	Create(ctx context.Context, n domain.WebNotification) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides kaizen lifecycle and kaizen-type operations.
type Service struct {
	kaizens  kaizenRepo
	types    kaizenTypeRepo
	points   gamePointsCreditor
	notifier notificationCreator
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Kaizen service.
func NewService(
	log *slog.Logger,
	kaizens kaizenRepo,
	types kaizenTypeRepo,
	points gamePointsCreditor,
	notifier notificationCreator,
	tx txManager,
) *Service {
	return &Service{
		kaizens:  kaizens,
		types:    types,
		points:   points,
		notifier: notifier,
		tx:       tx,
		log:      log.With("service", "kaizen"),
	}
}
