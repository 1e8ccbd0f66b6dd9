package kaizen

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

// CreateKaizen submits a new kaizen proposal in ACTIVE state. The point value
// is copied from the referenced kaizen type at submission time, so later type
// edits never change already-submitted kaizens.
func (s *Service) CreateKaizen(ctx context.Context, input CreateKaizenInput) (domain.Kaizen, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Kaizen{}, domain.ErrUnauthorized
	}
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.Kaizen{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Kaizen{}, err
	}

	kaizenType, err := s.types.GetByID(ctx, orgID, input.TypeID)
	if err != nil {
		return domain.Kaizen{}, fmt.Errorf("load kaizen type: %w", err)
	}

	now := time.Now().UTC()
	k := domain.Kaizen{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ProjectID:      input.ProjectID,
		GameID:         input.GameID,
		AuthorID:       userID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Status:         domain.KaizenStatusActive,
		Points:         kaizenType.Points,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.kaizens.Create(ctx, k); err != nil {
		return domain.Kaizen{}, fmt.Errorf("create kaizen: %w", err)
	}

	s.log.InfoContext(ctx, "kaizen created",
		slog.String("kaizen_id", k.ID.String()),
		slog.String("author_id", userID.String()),
		slog.String("game_id", k.GameID.String()),
		slog.Float64("points", k.Points),
	)
	return k, nil
}

// ListKaizens returns a game's kaizens, newest first, optionally filtered by
// status.
func (s *Service) ListKaizens(ctx context.Context, input ListKaizensInput) ([]domain.Kaizen, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	list, err := s.kaizens.ListByGame(ctx, input.GameID, input.Status, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list kaizens: %w", err)
	}
	return list, nil
}
