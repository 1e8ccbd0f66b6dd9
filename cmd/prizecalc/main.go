// Command prizecalc closes a prize period for one game: every user holding
// points in the game gets a financial prize proportional to their share of
// the game's total points.
//
// Usage:
//
//	prizecalc -game <uuid> -org <uuid> -period 2026-08
//
// The period defaults to the previous calendar month. Users who already have
// a prize for the period are skipped, so the command is safe to re-run after
// a partial failure. Labor cost, KPI multiplier and worker count come from
// configuration (PRIZE_LABOR_COST, PRIZE_KPI_MULTIPLIER, PRIZE_WORKERS).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/kaizenly/gamify-backend/internal/app"
	"github.com/kaizenly/gamify-backend/internal/domain"
	"github.com/kaizenly/gamify-backend/internal/service/points"
	"github.com/kaizenly/gamify-backend/internal/service/prize"
	"github.com/kaizenly/gamify-backend/pkg/ctxutil"
)

func main() {
	var (
		gameFlag   = flag.String("game", "", "game UUID (required)")
		orgFlag    = flag.String("org", "", "organization UUID (required)")
		periodFlag = flag.String("period", "", "period YYYY-MM (default: previous month)")
	)
	flag.Parse()

	gameID, err := uuid.Parse(*gameFlag)
	if err != nil {
		log.Fatalf("invalid -game: %v", err)
	}
	orgID, err := uuid.Parse(*orgFlag)
	if err != nil {
		log.Fatalf("invalid -org: %v", err)
	}

	periodStr := *periodFlag
	if periodStr == "" {
		periodStr = previousPeriod()
	}
	period, err := domain.ParsePeriod(periodStr)
	if err != nil {
		log.Fatalf("invalid -period: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer a.Close()

	created, skipped, err := run(ctx, a, orgID, gameID, period)
	if err != nil {
		a.Log.Error("period close failed",
			slog.String("game_id", gameID.String()),
			slog.String("period", period.String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	fmt.Printf("Period %s closed for game %s: %d prizes created, %d users skipped.\n",
		period, gameID, created, skipped)
}

func run(ctx context.Context, a *app.App, orgID, gameID uuid.UUID, period domain.Period) (created, skipped int64, err error) {
	ctx = ctxutil.WithOrganizationID(ctx, orgID)

	laborCost, err := decimal.NewFromString(a.Config.Prize.LaborCost)
	if err != nil {
		return 0, 0, fmt.Errorf("parse labor cost: %w", err)
	}
	kpi := decimal.NewFromFloat(a.Config.Prize.KPIMultiplier)

	holders, err := listHolders(ctx, a, gameID)
	if err != nil {
		return 0, 0, err
	}

	grandTotal := 0.0
	for _, h := range holders {
		if h.TotalPoints > 0 {
			grandTotal += h.TotalPoints
		}
	}
	if grandTotal == 0 {
		a.Log.Info("no positive point totals, nothing to pay out",
			slog.String("game_id", gameID.String()),
			slog.String("period", period.String()),
		)
		return 0, 0, nil
	}

	var createdCount, skippedCount atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Config.Prize.Workers)

	for _, holder := range holders {
		if holder.TotalPoints <= 0 {
			skippedCount.Add(1)
			continue
		}

		g.Go(func() error {
			_, err := a.Prizes.GetPrizeByUserAndPeriod(gctx, prize.GetPrizeInput{
				UserID: holder.UserID,
				GameID: gameID,
				Period: period.String(),
			})
			switch {
			case err == nil:
				// Already paid for this period.
				skippedCount.Add(1)
				return nil
			case !errors.Is(err, domain.ErrNotFound):
				return err
			}

			share := decimal.NewFromFloat(holder.TotalPoints).
				Div(decimal.NewFromFloat(grandTotal))
			amount := laborCost.Mul(kpi).Mul(share).Round(2)

			_, err = a.Prizes.CreatePrize(gctx, prize.CreatePrizeInput{
				ProjectID: holder.ProjectID,
				GameID:    gameID,
				UserID:    holder.UserID,
				Amount:    amount,
				Period:    period.String(),
				Details: &domain.PrizeDetails{
					LaborCost:     laborCost,
					KPIMultiplier: a.Config.Prize.KPIMultiplier,
					TaskPoints:    holder.TaskPoints,
					KaizenPoints:  holder.KaizenPoints,
				},
			})
			if err != nil {
				return fmt.Errorf("prize for user %s: %w", holder.UserID, err)
			}
			createdCount.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return createdCount.Load(), skippedCount.Load(), err
	}
	return createdCount.Load(), skippedCount.Load(), nil
}

// listHolders pages through the game's leaderboard until exhausted.
func listHolders(ctx context.Context, a *app.App, gameID uuid.UUID) ([]domain.UserGamePoints, error) {
	var holders []domain.UserGamePoints
	offset := 0
	for {
		page, err := a.Points.ListGameLeaderboard(ctx, points.LeaderboardInput{
			GameID: gameID,
			Limit:  points.MaxLeaderboardLimit,
			Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("list point holders: %w", err)
		}
		holders = append(holders, page...)
		if len(page) < points.MaxLeaderboardLimit {
			return holders, nil
		}
		offset += len(page)
	}
}

// previousPeriod returns the calendar month before the current one in UTC.
func previousPeriod() string {
	now := time.Now().UTC()
	firstOfMonth := now.AddDate(0, 0, -(now.Day() - 1))
	return domain.PeriodOf(firstOfMonth.AddDate(0, -1, 0)).String()
}
