package config

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Points.UpsertRetries < 1 {
		return fmt.Errorf("points.upsert_retries must be >= 1 (got %d)", c.Points.UpsertRetries)
	}

	if c.Prize.KPIMultiplier < 0 {
		return fmt.Errorf("prize.kpi_multiplier must be >= 0 (got %v)", c.Prize.KPIMultiplier)
	}
	if c.Prize.Workers < 1 {
		return fmt.Errorf("prize.workers must be >= 1 (got %d)", c.Prize.Workers)
	}
	if _, err := decimal.NewFromString(c.Prize.LaborCost); err != nil {
		return fmt.Errorf("prize.labor_cost: invalid decimal %q: %w", c.Prize.LaborCost, err)
	}

	return nil
}
