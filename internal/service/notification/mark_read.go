package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// MarkAsRead marks the caller's notifications as read and returns how many
// rows were actually updated.
//
// IDs that do not exist, belong to another user or organization, or are
// already read are skipped silently — the count is the only signal. Absent
// rows are indistinguishable from foreign ones on purpose: the caller learns
// nothing about other tenants' notifications.
func (s *Service) MarkAsRead(ctx context.Context, input MarkAsReadInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	updated := 0

	for _, id := range input.IDs {
		n, err := s.notifications.GetByID(ctx, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			continue
		case err != nil:
			return updated, fmt.Errorf("load notification %s: %w", id, err)
		}

		if !n.BelongsTo(userID, orgID) || n.Read {
			continue
		}

		err = s.notifications.MarkRead(ctx, id, now)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Raced with another reader marking the same row.
			continue
		case err != nil:
			return updated, fmt.Errorf("mark notification %s read: %w", id, err)
		}
		updated++
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int("requested", len(input.IDs)),
		slog.Int("updated", updated),
	)
	return updated, nil
}
