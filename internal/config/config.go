package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Points   PointsConfig   `yaml:"points"`
	Prize    PrizeConfig    `yaml:"prize"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// PointsConfig holds point-accounting settings.
type PointsConfig struct {
	// UpsertRetries is how many times a wholesale point replacement is
	// retried when the optimistic sequence check loses a race.
	UpsertRetries int `yaml:"upsert_retries" env:"POINTS_UPSERT_RETRIES" env-default:"3"`
}

// PrizeConfig holds batch prize-calculation settings.
type PrizeConfig struct {
	// KPIMultiplier scales the labor-cost share for every prize in a run.
	KPIMultiplier float64 `yaml:"kpi_multiplier" env:"PRIZE_KPI_MULTIPLIER" env-default:"1.0"`
	// LaborCost is the per-period labor cost in the organization's currency,
	// as a decimal string.
	LaborCost string `yaml:"labor_cost" env:"PRIZE_LABOR_COST" env-default:"0"`
	// Workers bounds the parallelism of the period-close job.
	Workers int `yaml:"workers" env:"PRIZE_WORKERS" env-default:"4"`
}
