// Package prize implements the FinancialPrize repository using PostgreSQL.
//
// Prizes are write-once: there is no update statement in this package.
// The (user, game, period) triple is logically unique but not enforced by a
// unique index — creation is intentionally non-idempotent and deduplication
// is the caller's responsibility via GetByUserAndPeriod.
package prize

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/kaizenly/gamify-backend/internal/adapter/postgres"
	"github.com/kaizenly/gamify-backend/internal/domain"
)

// Repo provides financial-prize persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prize repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// selectColumns casts numerics to text so amounts survive the round trip
// with exact decimal precision.
var selectColumns = []string{
	"id", "organization_id", "project_id", "game_id", "user_id",
	"amount::text", "period", "calculated_at",
	"labor_cost::text", "kpi_multiplier", "task_points", "kaizen_points",
}

// Create inserts a prize row. The id is generated by the domain layer;
// a duplicate id maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.FinancialPrize) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		laborCost     *string
		kpiMultiplier *float64
		taskPoints    *int64
		kaizenPoints  *int64
	)
	if p.Details != nil {
		lc := p.Details.LaborCost.String()
		laborCost = &lc
		kpiMultiplier = &p.Details.KPIMultiplier
		tp := postgres.RoundPoints(p.Details.TaskPoints)
		taskPoints = &tp
		kp := postgres.RoundPoints(p.Details.KaizenPoints)
		kaizenPoints = &kp
	}

	query := postgres.Builder.
		Insert("financial_prizes").
		Columns("id", "organization_id", "project_id", "game_id", "user_id",
			"amount", "period", "calculated_at",
			"labor_cost", "kpi_multiplier", "task_points", "kaizen_points").
		Values(p.ID, p.OrganizationID, p.ProjectID, p.GameID, p.UserID,
			p.Amount.String(), p.Period.String(), p.CalculatedAt,
			laborCost, kpiMultiplier, taskPoints, kaizenPoints)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert financial_prize: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "financial_prize", p.ID.String())
	}
	return nil
}

// GetByUserAndPeriod returns the most recently calculated prize for a user,
// game and period. Returns domain.ErrNotFound when no prize exists — the
// signal callers use to decide a prize still needs creating.
func (r *Repo) GetByUserAndPeriod(ctx context.Context, userID, gameID uuid.UUID, period domain.Period) (domain.FinancialPrize, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder.
		Select(selectColumns...).
		From("financial_prizes").
		Where(sq.Eq{"user_id": userID, "game_id": gameID, "period": period.String()}).
		OrderBy("calculated_at DESC").
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.FinancialPrize{}, fmt.Errorf("build get financial_prize: %w", err)
	}

	p, err := scan(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.FinancialPrize{}, postgres.MapError(err, "financial_prize", userID.String()+"/"+period.String())
	}
	return p, nil
}

// ListByGameAndPeriod returns all prizes for a game and period ordered by
// amount descending.
func (r *Repo) ListByGameAndPeriod(ctx context.Context, gameID uuid.UUID, period domain.Period) ([]domain.FinancialPrize, error) {
	query := postgres.Builder.
		Select(selectColumns...).
		From("financial_prizes").
		Where(sq.Eq{"game_id": gameID, "period": period.String()}).
		OrderBy("amount DESC", "user_id ASC")

	return r.list(ctx, query)
}

// ListByUser returns a user's prizes, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.FinancialPrize, error) {
	query := postgres.Builder.
		Select(selectColumns...).
		From("financial_prizes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("calculated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.FinancialPrize, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list financial_prizes: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list financial_prizes: %w", err)
	}
	defer rows.Close()

	prizes := []domain.FinancialPrize{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan financial_prize: %w", err)
		}
		prizes = append(prizes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate financial_prizes: %w", err)
	}

	return prizes, nil
}

func scan(row pgx.Row) (domain.FinancialPrize, error) {
	var (
		p             domain.FinancialPrize
		amount        string
		period        string
		calculatedAt  time.Time
		laborCost     *string
		kpiMultiplier *float64
		taskPoints    *int64
		kaizenPoints  *int64
	)
	if err := row.Scan(&p.ID, &p.OrganizationID, &p.ProjectID, &p.GameID, &p.UserID,
		&amount, &period, &calculatedAt,
		&laborCost, &kpiMultiplier, &taskPoints, &kaizenPoints); err != nil {
		return domain.FinancialPrize{}, err
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.FinancialPrize{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	p.Amount = amt
	p.Period = domain.Period(period)
	p.CalculatedAt = calculatedAt

	if laborCost != nil {
		lc, err := decimal.NewFromString(*laborCost)
		if err != nil {
			return domain.FinancialPrize{}, fmt.Errorf("parse labor_cost %q: %w", *laborCost, err)
		}
		details := domain.PrizeDetails{LaborCost: lc}
		if kpiMultiplier != nil {
			details.KPIMultiplier = *kpiMultiplier
		}
		if taskPoints != nil {
			details.TaskPoints = float64(*taskPoints)
		}
		if kaizenPoints != nil {
			details.KaizenPoints = float64(*kaizenPoints)
		}
		p.Details = &details
	}

	return p, nil
}
