package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// List returns the caller's notifications in the calling organization,
// unread first, then newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.WebNotification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	list, err := s.notifications.ListByUser(ctx, userID, orgID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// Create stores an unread notification for a user in the calling
// organization.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.WebNotification, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.WebNotification{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.WebNotification{}, err
	}

	n := domain.WebNotification{
		ID:             uuid.New(),
		UserID:         input.UserID,
		OrganizationID: orgID,
		Title:          strings.TrimSpace(input.Title),
		Body:           input.Body,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return domain.WebNotification{}, fmt.Errorf("create notification: %w", err)
	}

	s.log.InfoContext(ctx, "notification created",
		slog.String("notification_id", n.ID.String()),
		slog.String("user_id", n.UserID.String()),
	)
	return n, nil
}
