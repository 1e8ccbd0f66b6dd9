// Package gamepoints implements the user and team game-point repositories
// using PostgreSQL.
//
// Both aggregates are wholesale-replace shapes, so every write is guarded by
// an optimistic check on the sequence column: the upsert only lands when the
// stored sequence is exactly one behind the incoming one. A lost race
// surfaces as domain.ErrConflict and the caller reloads and retries.
package gamepoints

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

// Repo provides user and team game-point persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new game-points repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `user_id, game_id, organization_id, project_id,
       task_points, kaizen_points, total_points, sequence, created_at, updated_at`

const teamColumns = `team_id, game_id, organization_id, project_id,
       task_points, kaizen_points, total_points, sequence, created_at, updated_at`

const upsertUserSQL = `
INSERT INTO user_game_points (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (user_id, game_id) DO UPDATE SET
    task_points   = EXCLUDED.task_points,
    kaizen_points = EXCLUDED.kaizen_points,
    total_points  = EXCLUDED.total_points,
    sequence      = EXCLUDED.sequence,
    updated_at    = EXCLUDED.updated_at
WHERE user_game_points.sequence = EXCLUDED.sequence - 1`

const upsertTeamSQL = `
INSERT INTO team_game_points (` + teamColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (team_id, game_id) DO UPDATE SET
    task_points   = EXCLUDED.task_points,
    kaizen_points = EXCLUDED.kaizen_points,
    total_points  = EXCLUDED.total_points,
    sequence      = EXCLUDED.sequence,
    updated_at    = EXCLUDED.updated_at
WHERE team_game_points.sequence = EXCLUDED.sequence - 1`

// ---------------------------------------------------------------------------
// User game points
// ---------------------------------------------------------------------------

// GetUser returns the user aggregate by its composite key.
// Returns domain.ErrNotFound when the aggregate was never credited.
func (r *Repo) GetUser(ctx context.Context, userID, gameID uuid.UUID) (domain.UserGamePoints, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select("user_id", "game_id", "organization_id", "project_id",
			"task_points", "kaizen_points", "total_points", "sequence", "created_at", "updated_at").
		From("user_game_points").
		Where(sq.Eq{"user_id": userID, "game_id": gameID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.UserGamePoints{}, fmt.Errorf("build get user_game_points: %w", err)
	}

	p, err := scanUser(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.UserGamePoints{}, postgres.MapError(err, "user_game_points", compositeKey(userID, gameID))
	}
	return p, nil
}

// UpsertUser persists the aggregate with a compare-and-swap on sequence.
// The row is inserted when absent; on conflict the update only applies when
// the stored sequence is p.Sequence - 1. Returns domain.ErrConflict when the
// check fails (concurrent writer won).
func (r *Repo) UpsertUser(ctx context.Context, p domain.UserGamePoints) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	task := postgres.RoundPoints(p.TaskPoints)
	kaizen := postgres.RoundPoints(p.KaizenPoints)

	tag, err := querier.Exec(ctx, upsertUserSQL,
		p.UserID, p.GameID, p.OrganizationID, p.ProjectID,
		task, kaizen, task+kaizen, p.Sequence, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user_game_points", compositeKey(p.UserID, p.GameID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_game_points %s: stale sequence %d: %w",
			compositeKey(p.UserID, p.GameID), p.Sequence, domain.ErrConflict)
	}
	return nil
}

// ListByGame returns the user aggregates of a game ordered by total points
// descending (the game leaderboard). Returns an empty slice when nobody has
// been credited yet.
func (r *Repo) ListByGame(ctx context.Context, gameID uuid.UUID, limit, offset int) ([]domain.UserGamePoints, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select("user_id", "game_id", "organization_id", "project_id",
			"task_points", "kaizen_points", "total_points", "sequence", "created_at", "updated_at").
		From("user_game_points").
		Where(sq.Eq{"game_id": gameID}).
		OrderBy("total_points DESC", "user_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user_game_points: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list user_game_points: %w", err)
	}
	defer rows.Close()

	list := []domain.UserGamePoints{}
	for rows.Next() {
		p, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user_game_points: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user_game_points: %w", err)
	}

	return list, nil
}

// ---------------------------------------------------------------------------
// Team game points
// ---------------------------------------------------------------------------

// GetTeam returns the team aggregate by its composite key.
func (r *Repo) GetTeam(ctx context.Context, teamID, gameID uuid.UUID) (domain.TeamGamePoints, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select("team_id", "game_id", "organization_id", "project_id",
			"task_points", "kaizen_points", "total_points", "sequence", "created_at", "updated_at").
		From("team_game_points").
		Where(sq.Eq{"team_id": teamID, "game_id": gameID})

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.TeamGamePoints{}, fmt.Errorf("build get team_game_points: %w", err)
	}

	p, err := scanTeam(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.TeamGamePoints{}, postgres.MapError(err, "team_game_points", compositeKey(teamID, gameID))
	}
	return p, nil
}

// UpsertTeam persists the team aggregate with the same CAS semantics as
// UpsertUser.
func (r *Repo) UpsertTeam(ctx context.Context, p domain.TeamGamePoints) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	task := postgres.RoundPoints(p.TaskPoints)
	kaizen := postgres.RoundPoints(p.KaizenPoints)

	tag, err := querier.Exec(ctx, upsertTeamSQL,
		p.TeamID, p.GameID, p.OrganizationID, p.ProjectID,
		task, kaizen, task+kaizen, p.Sequence, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "team_game_points", compositeKey(p.TeamID, p.GameID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("team_game_points %s: stale sequence %d: %w",
			compositeKey(p.TeamID, p.GameID), p.Sequence, domain.ErrConflict)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.UserGamePoints, error) {
	var (
		p                         domain.UserGamePoints
		task, kaizenPoints, total int64
	)
	if err := row.Scan(&p.UserID, &p.GameID, &p.OrganizationID, &p.ProjectID,
		&task, &kaizenPoints, &total, &p.Sequence, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.UserGamePoints{}, err
	}
	p.TaskPoints = float64(task)
	p.KaizenPoints = float64(kaizenPoints)
	p.TotalPoints = float64(total)
	return p, nil
}

func scanTeam(row pgx.Row) (domain.TeamGamePoints, error) {
	var (
		p                         domain.TeamGamePoints
		task, kaizenPoints, total int64
	)
	if err := row.Scan(&p.TeamID, &p.GameID, &p.OrganizationID, &p.ProjectID,
		&task, &kaizenPoints, &total, &p.Sequence, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.TeamGamePoints{}, err
	}
	p.TaskPoints = float64(task)
	p.KaizenPoints = float64(kaizenPoints)
	p.TotalPoints = float64(total)
	return p, nil
}

func compositeKey(a, b uuid.UUID) string {
	return a.String() + "/" + b.String()
}
