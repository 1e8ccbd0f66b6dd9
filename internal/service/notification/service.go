// Package notification implements the web-notification use-cases.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type notificationRepo interface {
	Create(ctx context.Context, n domain.WebNotification) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.WebNotification, error)
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error
	ListByUser(ctx context.Context, userID, organizationID uuid.UUID, limit, offset int) ([]domain.WebNotification, error)
}

// Service provides web-notification operations.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates a new Notification service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}
