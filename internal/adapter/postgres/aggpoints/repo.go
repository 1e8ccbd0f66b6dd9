// Package aggpoints implements the per-game running-total repositories
// (kaizen points and task points) using PostgreSQL.
//
// Writes are single-statement atomic increments: the upsert adds the delta
// server-side, so concurrent credits against the same game can never lose an
// update. No read step participates in the write path.
package aggpoints

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

// Repo provides per-game running-total persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new aggregate-points repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func tableFor(kind domain.GamePointsKind) (string, error) {
	switch kind {
	case domain.GamePointsKindKaizen:
		return "game_kaizen_points", nil
	case domain.GamePointsKindTask:
		return "game_task_points", nil
	default:
		return "", fmt.Errorf("game points kind %q: %w", kind, domain.ErrValidation)
	}
}

const addPointsSQLTemplate = `
INSERT INTO %[1]s (game_id, organization_id, project_id, points, sequence, created_at, updated_at)
VALUES ($1, $2, $3, $4, 1, $5, $5)
ON CONFLICT (game_id) DO UPDATE SET
    points     = %[1]s.points + EXCLUDED.points,
    sequence   = %[1]s.sequence + 1,
    updated_at = EXCLUDED.updated_at
RETURNING game_id, organization_id, project_id, points, sequence, created_at, updated_at`

// AddPoints atomically adds delta to the game's running total, creating the
// row on first credit. The delta is rounded half-up at this boundary; it may
// be negative and the total has no floor. Returns the post-increment state.
func (r *Repo) AddPoints(ctx context.Context, p domain.GamePoints, delta float64) (domain.GamePoints, error) {
	table, err := tableFor(p.Kind)
	if err != nil {
		return domain.GamePoints{}, err
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := fmt.Sprintf(addPointsSQLTemplate, table)
	row := querier.QueryRow(ctx, sql,
		p.GameID, p.OrganizationID, p.ProjectID,
		postgres.RoundPoints(delta), p.UpdatedAt,
	)

	out, err := scan(row, p.Kind)
	if err != nil {
		return domain.GamePoints{}, postgres.MapError(err, table, p.GameID.String())
	}
	return out, nil
}

// Get returns the running total for a game.
// Returns domain.ErrNotFound when the game was never credited.
func (r *Repo) Get(ctx context.Context, kind domain.GamePointsKind, gameID uuid.UUID) (domain.GamePoints, error) {
	table, err := tableFor(kind)
	if err != nil {
		return domain.GamePoints{}, err
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select("game_id", "organization_id", "project_id", "points", "sequence", "created_at", "updated_at").
		From(table).
		Where(sq.Eq{"game_id": gameID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.GamePoints{}, fmt.Errorf("build get %s: %w", table, err)
	}

	p, err := scan(querier.QueryRow(ctx, sql, args...), kind)
	if err != nil {
		return domain.GamePoints{}, postgres.MapError(err, table, gameID.String())
	}
	return p, nil
}

func scan(row pgx.Row, kind domain.GamePointsKind) (domain.GamePoints, error) {
	var (
		p      domain.GamePoints
		points int64
	)
	if err := row.Scan(&p.GameID, &p.OrganizationID, &p.ProjectID,
		&points, &p.Sequence, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.GamePoints{}, err
	}
	p.Kind = kind
	p.Points = float64(points)
	return p, nil
}
