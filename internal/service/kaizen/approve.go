package kaizen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// ApproveKaizen transitions a kaizen from DONE to APPROVED and credits its
// point value to the game's kaizen running total. Both writes happen in one
// transaction; the credit is an atomic increment at the storage layer, so
// concurrent approvals against the same game never lose points.
//
// A kaizen of another organization surfaces as domain.ErrNotFound. A kaizen
// not in DONE state fails the transition gate without touching storage.
func (s *Service) ApproveKaizen(ctx context.Context, input ApproveKaizenInput) (domain.Kaizen, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.Kaizen{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Kaizen{}, err
	}

	now := time.Now().UTC()

	current, err := s.kaizens.GetByID(ctx, orgID, input.KaizenID)
	if err != nil {
		return domain.Kaizen{}, fmt.Errorf("load kaizen: %w", err)
	}

	approved, err := current.Approve(now)
	if err != nil {
		return domain.Kaizen{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.kaizens.Update(txCtx, approved); err != nil {
			return fmt.Errorf("save kaizen: %w", err)
		}

		identity := domain.NewGamePoints(domain.GamePointsKindKaizen,
			approved.GameID, approved.OrganizationID, approved.ProjectID, now)
		if _, err := s.points.AddPoints(txCtx, identity, approved.Points); err != nil {
			return fmt.Errorf("credit game kaizen points: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Kaizen{}, err
	}

	s.notifyApproved(ctx, approved, now)

	s.log.InfoContext(ctx, "kaizen approved",
		slog.String("kaizen_id", approved.ID.String()),
		slog.String("game_id", approved.GameID.String()),
		slog.Float64("points", approved.Points),
	)
	return approved, nil
}

// notifyApproved stores a web notification for the author. Notification
// failures never fail the approval itself.
func (s *Service) notifyApproved(ctx context.Context, k domain.Kaizen, now time.Time) {
	body := fmt.Sprintf("%q was approved and %.0f points were credited to the game", k.Title, k.Points)
	n := domain.WebNotification{
		ID:             uuid.New(),
		UserID:         k.AuthorID,
		OrganizationID: k.OrganizationID,
		Title:          "kaizen approved",
		Body:           &body,
		CreatedAt:      now,
	}

	if err := s.notifier.Create(ctx, n); err != nil {
		s.log.WarnContext(ctx, "kaizen approval notification failed",
			slog.String("kaizen_id", k.ID.String()),
			slog.String("author_id", k.AuthorID.String()),
			slog.String("error", err.Error()),
		)
	}
}
