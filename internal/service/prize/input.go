package prize

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

// CreatePrizeInput holds the parameters for creating a financial prize.
type CreatePrizeInput struct {
	ProjectID uuid.UUID
	GameID    uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal
	Period    string
	Details   *domain.PrizeDetails
}

// Validate checks all fields and collects all errors.
func (i CreatePrizeInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if _, err := domain.ParsePeriod(i.Period); err != nil {
		errs = append(errs, domain.FieldError{Field: "period", Message: "must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetPrizeInput holds the parameters for reading one user's prize in a period.
type GetPrizeInput struct {
	UserID uuid.UUID
	GameID uuid.UUID
	Period string
}

// Validate checks all fields and collects all errors.
func (i GetPrizeInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if _, err := domain.ParsePeriod(i.Period); err != nil {
		errs = append(errs, domain.FieldError{Field: "period", Message: "must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListGamePrizesInput holds the parameters for listing a game's prizes in a
// period.
type ListGamePrizesInput struct {
	GameID uuid.UUID
	Period string
}

// Validate checks all fields and collects all errors.
func (i ListGamePrizesInput) Validate() error {
	var errs []domain.FieldError
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if _, err := domain.ParsePeriod(i.Period); err != nil {
		errs = append(errs, domain.FieldError{Field: "period", Message: "must be YYYY-MM"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUserPrizesInput holds the parameters for listing a user's prize history.
type ListUserPrizesInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListUserPrizesInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
