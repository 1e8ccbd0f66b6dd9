// Package kaizentype implements the KaizenType repository using PostgreSQL.
//
// Edits are guarded by a compare-and-swap on the sequence column, the same
// optimistic discipline the game-point aggregates use.
package kaizentype

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kaizenly/gamify-backend/internal/adapter/postgres"
	"github.com/kaizenly/gamify-backend/internal/domain"
)

// Repo provides kaizen-type persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new kaizen-type repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "organization_id", "name", "points",
	"idea_points", "idea_execution_points", "sequence", "created_at", "updated_at",
}

// Create inserts a new kaizen type. A duplicate name within the organization
// maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t domain.KaizenType) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Insert("kaizen_types").
		Columns(columns...).
		Values(t.ID, t.OrganizationID, t.Name, postgres.RoundPoints(t.Points),
			roundOptional(t.IdeaPoints), roundOptional(t.IdeaExecutionPoints),
			t.Sequence, t.CreatedAt, t.UpdatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert kaizen_type: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "kaizen_type", t.ID.String())
	}
	return nil
}

// GetByID returns a kaizen type scoped to an organization.
func (r *Repo) GetByID(ctx context.Context, organizationID, id uuid.UUID) (domain.KaizenType, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(columns...).
		From("kaizen_types").
		Where(sq.Eq{"id": id, "organization_id": organizationID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.KaizenType{}, fmt.Errorf("build get kaizen_type: %w", err)
	}

	t, err := scan(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.KaizenType{}, postgres.MapError(err, "kaizen_type", id.String())
	}
	return t, nil
}

// Update persists an edited kaizen type only when the stored sequence is
// exactly one behind. Returns domain.ErrConflict on a lost race and
// domain.ErrNotFound when the row is absent.
func (r *Repo) Update(ctx context.Context, t domain.KaizenType) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Update("kaizen_types").
		Set("name", t.Name).
		Set("points", postgres.RoundPoints(t.Points)).
		Set("idea_points", roundOptional(t.IdeaPoints)).
		Set("idea_execution_points", roundOptional(t.IdeaExecutionPoints)).
		Set("sequence", t.Sequence).
		Set("updated_at", t.UpdatedAt).
		Where(sq.Eq{"id": t.ID, "organization_id": t.OrganizationID, "sequence": t.Sequence - 1})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update kaizen_type: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "kaizen_type", t.ID.String())
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing row from a stale sequence.
		if _, getErr := r.GetByID(ctx, t.OrganizationID, t.ID); getErr != nil {
			return getErr
		}
		return fmt.Errorf("kaizen_type %s: stale sequence %d: %w", t.ID, t.Sequence, domain.ErrConflict)
	}
	return nil
}

// ListByOrganization returns all kaizen types of an organization ordered by
// name.
func (r *Repo) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]domain.KaizenType, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(columns...).
		From("kaizen_types").
		Where(sq.Eq{"organization_id": organizationID}).
		OrderBy("name ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list kaizen_types: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list kaizen_types: %w", err)
	}
	defer rows.Close()

	types := []domain.KaizenType{}
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kaizen_type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kaizen_types: %w", err)
	}

	return types, nil
}

func scan(row pgx.Row) (domain.KaizenType, error) {
	var (
		t          domain.KaizenType
		points     int64
		idea, exec *int64
	)
	if err := row.Scan(&t.ID, &t.OrganizationID, &t.Name, &points,
		&idea, &exec, &t.Sequence, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return domain.KaizenType{}, err
	}
	t.Points = float64(points)
	if idea != nil {
		v := float64(*idea)
		t.IdeaPoints = &v
	}
	if exec != nil {
		v := float64(*exec)
		t.IdeaExecutionPoints = &v
	}
	return t, nil
}

func roundOptional(v *float64) *int64 {
	if v == nil {
		return nil
	}
	r := postgres.RoundPoints(*v)
	return &r
}
