package points

import (
	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

// CreditUserPointsInput holds the parameters for replacing a user's
// game-point aggregate.
type CreditUserPointsInput struct {
	UserID       uuid.UUID
	GameID       uuid.UUID
	ProjectID    uuid.UUID
	TaskPoints   float64
	KaizenPoints float64
}

// Validate checks all fields and collects all errors.
func (i CreditUserPointsInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreditTeamPointsInput holds the parameters for replacing a team's
// game-point aggregate.
type CreditTeamPointsInput struct {
	TeamID       uuid.UUID
	GameID       uuid.UUID
	ProjectID    uuid.UUID
	TaskPoints   float64
	KaizenPoints float64
}

// Validate checks all fields and collects all errors.
func (i CreditTeamPointsInput) Validate() error {
	var errs []domain.FieldError
	if i.TeamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "team_id", Message: "required"})
	}
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreditGamePointsInput holds the parameters for an additive credit to a
// game's running total. Delta may be negative or zero.
type CreditGamePointsInput struct {
	Kind      domain.GamePointsKind
	GameID    uuid.UUID
	ProjectID uuid.UUID
	Delta     float64
}

// Validate checks all fields and collects all errors.
func (i CreditGamePointsInput) Validate() error {
	var errs []domain.FieldError
	if !i.Kind.Valid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be KAIZEN or TASK"})
	}
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetUserPointsInput holds the parameters for reading a user's aggregate.
type GetUserPointsInput struct {
	UserID uuid.UUID
	GameID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetUserPointsInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LeaderboardInput holds the parameters for listing a game's leaderboard.
type LeaderboardInput struct {
	GameID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i LeaderboardInput) Validate() error {
	var errs []domain.FieldError
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLeaderboardLimit {
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
