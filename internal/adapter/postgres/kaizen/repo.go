// Package kaizen implements the Kaizen repository using PostgreSQL.
package kaizen

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

// Repo provides kaizen persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new kaizen repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"id", "organization_id", "project_id", "game_id", "author_id",
	"title", "description", "status", "points", "created_at", "updated_at",
}

// Create inserts a new kaizen.
func (r *Repo) Create(ctx context.Context, k domain.Kaizen) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Insert("kaizens").
		Columns(columns...).
		Values(k.ID, k.OrganizationID, k.ProjectID, k.GameID, k.AuthorID,
			k.Title, k.Description, string(k.Status), postgres.RoundPoints(k.Points),
			k.CreatedAt, k.UpdatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert kaizen: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "kaizen", k.ID.String())
	}
	return nil
}

// GetByID returns a kaizen scoped to an organization.
// A kaizen of another organization surfaces as domain.ErrNotFound — existence
// is never leaked across tenants.
func (r *Repo) GetByID(ctx context.Context, organizationID, id uuid.UUID) (domain.Kaizen, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(columns...).
		From("kaizens").
		Where(sq.Eq{"id": id, "organization_id": organizationID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Kaizen{}, fmt.Errorf("build get kaizen: %w", err)
	}

	k, err := scan(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Kaizen{}, postgres.MapError(err, "kaizen", id.String())
	}
	return k, nil
}

// Update persists the mutable fields of a kaizen (status, points, title,
// description, updated_at). Returns domain.ErrNotFound when the row is
// absent or owned by another organization.
func (r *Repo) Update(ctx context.Context, k domain.Kaizen) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Update("kaizens").
		Set("title", k.Title).
		Set("description", k.Description).
		Set("status", string(k.Status)).
		Set("points", postgres.RoundPoints(k.Points)).
		Set("updated_at", k.UpdatedAt).
		Where(sq.Eq{"id": k.ID, "organization_id": k.OrganizationID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update kaizen: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "kaizen", k.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("kaizen %s: %w", k.ID, domain.ErrNotFound)
	}
	return nil
}

// ListByGame returns a game's kaizens, newest first, optionally filtered by
// status.
func (r *Repo) ListByGame(ctx context.Context, gameID uuid.UUID, status *domain.KaizenStatus, limit, offset int) ([]domain.Kaizen, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(columns...).
		From("kaizens").
		Where(sq.Eq{"game_id": gameID}).
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if status != nil {
		query = query.Where(sq.Eq{"status": string(*status)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list kaizens: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list kaizens: %w", err)
	}
	defer rows.Close()

	kaizens := []domain.Kaizen{}
	for rows.Next() {
		k, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kaizen: %w", err)
		}
		kaizens = append(kaizens, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kaizens: %w", err)
	}

	return kaizens, nil
}

func scan(row pgx.Row) (domain.Kaizen, error) {
	var (
		k      domain.Kaizen
		status string
		points int64
	)
	if err := row.Scan(&k.ID, &k.OrganizationID, &k.ProjectID, &k.GameID, &k.AuthorID,
		&k.Title, &k.Description, &status, &points, &k.CreatedAt, &k.UpdatedAt); err != nil {
		return domain.Kaizen{}, err
	}
	k.Status = domain.KaizenStatus(status)
	k.Points = float64(points)
	return k, nil
}
