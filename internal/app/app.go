// Package app wires configuration, logging, the database pool and the
// use-case services into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaizenly/gamify-backend/internal/adapter/postgres"
	"github.com/kaizenly/gamify-backend/internal/adapter/postgres/aggpoints"
	gamepointsrepo "github.com/kaizenly/gamify-backend/internal/adapter/postgres/gamepoints"
	kaizenrepo "github.com/kaizenly/gamify-backend/internal/adapter/postgres/kaizen"
	kaizentyperepo "github.com/kaizenly/gamify-backend/internal/adapter/postgres/kaizentype"
	notificationrepo "github.com/kaizenly/gamify-backend/internal/adapter/postgres/notification"
	prizerepo "github.com/kaizenly/gamify-backend/internal/adapter/postgres/prize"
	"github.com/kaizenly/gamify-backend/internal/config"
	"github.com/kaizenly/gamify-backend/internal/service/kaizen"
	"github.com/kaizenly/gamify-backend/internal/service/notification"
	"github.com/kaizenly/gamify-backend/internal/service/points"
	"github.com/kaizenly/gamify-backend/internal/service/prize"
)

// App holds the wired application: configuration, logger, database pool and
// every use-case service. Callers (batch commands, a future transport layer)
// embed it instead of wiring services themselves.
type App struct {
	Config *config.Config
	Log    *slog.Logger

	Pool *pgxpool.Pool

	Points        *points.Service
	Prizes        *prize.Service
	Kaizens       *kaizen.Service
	Notifications *notification.Service
}

// New loads configuration, connects to the database and wires the services.
// Call Close when done.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	txManager := postgres.NewTxManager(pool)

	userTeamRepo := gamepointsrepo.New(pool)
	gameRepo := aggpoints.New(pool)
	prizes := prizerepo.New(pool)
	kaizens := kaizenrepo.New(pool)
	kaizenTypes := kaizentyperepo.New(pool)
	notifications := notificationrepo.New(pool)

	return &App{
		Config: cfg,
		Log:    logger,
		Pool:   pool,
		Points: points.NewService(logger, userTeamRepo, userTeamRepo, gameRepo,
			cfg.Points.UpsertRetries),
		Prizes:        prize.NewService(logger, prizes),
		Kaizens:       kaizen.NewService(logger, kaizens, kaizenTypes, gameRepo, notifications, txManager),
		Notifications: notification.NewService(logger, notifications),
	}, nil
}

// Close releases the application's resources.
func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
