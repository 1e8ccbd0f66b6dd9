package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period identifies a financial-prize calculation window as "YYYY-MM".
type Period string

var periodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParsePeriod validates a "YYYY-MM" string.
func ParsePeriod(s string) (Period, error) {
	if !periodRe.MatchString(s) {
		return "", NewValidationError("period", "must be YYYY-MM")
	}
	return Period(s), nil
}

// PeriodOf returns the period containing t (in t's location).
func PeriodOf(t time.Time) Period {
	return Period(fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())))
}

func (p Period) String() string { return string(p) }

// PrizeDetails is the optional calculation breakdown stored with a prize.
type PrizeDetails struct {
	LaborCost     decimal.Decimal
	KPIMultiplier float64
	TaskPoints    float64
	KaizenPoints  float64
}

// FinancialPrize is a write-once payout record for one user, game and period.
//
// There is no update operation: a new period requires a new prize, and
// creation is deliberately not idempotent — every call mints a fresh ID.
// Callers needing at-most-one-per-period must check GetByUserAndPeriod first.
type FinancialPrize struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	ProjectID      uuid.UUID
	GameID         uuid.UUID
	UserID         uuid.UUID
	Amount         decimal.Decimal
	Period         Period
	CalculatedAt   time.Time
	Details        *PrizeDetails
}

// NewFinancialPrize mints a prize with a fresh ID and CalculatedAt = now.
func NewFinancialPrize(organizationID, projectID, gameID, userID uuid.UUID, amount decimal.Decimal, period Period, details *PrizeDetails, now time.Time) FinancialPrize {
	return FinancialPrize{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		ProjectID:      projectID,
		GameID:         gameID,
		UserID:         userID,
		Amount:         amount,
		Period:         period,
		CalculatedAt:   now,
		Details:        details,
	}
}
