package kaizen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

// CreateKaizenType creates an organization-scoped kaizen category.
func (s *Service) CreateKaizenType(ctx context.Context, input CreateKaizenTypeInput) (domain.KaizenType, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.KaizenType{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.KaizenType{}, err
	}

	t := domain.NewKaizenType(orgID, strings.TrimSpace(input.Name), input.Points,
		input.IdeaPoints, input.IdeaExecutionPoints, time.Now().UTC())

	if err := s.types.Create(ctx, t); err != nil {
		return domain.KaizenType{}, fmt.Errorf("create kaizen type: %w", err)
	}

	s.log.InfoContext(ctx, "kaizen type created",
		slog.String("type_id", t.ID.String()),
		slog.String("name", t.Name),
	)
	return t, nil
}

// UpdateKaizenType edits a kaizen category. The edit bumps the category
// sequence and persists with an optimistic check; a concurrent edit surfaces
// as domain.ErrConflict and the caller re-reads and retries.
func (s *Service) UpdateKaizenType(ctx context.Context, input UpdateKaizenTypeInput) (domain.KaizenType, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return domain.KaizenType{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.KaizenType{}, err
	}

	current, err := s.types.GetByID(ctx, orgID, input.TypeID)
	if err != nil {
		return domain.KaizenType{}, fmt.Errorf("load kaizen type: %w", err)
	}

	next := current.WithValues(strings.TrimSpace(input.Name), input.Points,
		input.IdeaPoints, input.IdeaExecutionPoints, time.Now().UTC())

	if err := s.types.Update(ctx, next); err != nil {
		return domain.KaizenType{}, fmt.Errorf("update kaizen type: %w", err)
	}

	s.log.InfoContext(ctx, "kaizen type updated",
		slog.String("type_id", next.ID.String()),
		slog.Int64("sequence", next.Sequence),
	)
	return next, nil
}

// ListKaizenTypes returns the calling organization's kaizen categories.
func (s *Service) ListKaizenTypes(ctx context.Context) ([]domain.KaizenType, error) {
	orgID, ok := ctxutil.OrganizationIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.types.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list kaizen types: %w", err)
	}
	return list, nil
}
