package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserGamePoints is the per-user point aggregate for a single game,
// keyed by (UserID, GameID).
//
// TotalPoints is always TaskPoints + KaizenPoints and is never set
// independently. Sequence starts at 0 and grows by 1 on every transition.
type UserGamePoints struct {
	UserID         uuid.UUID
	GameID         uuid.UUID
	OrganizationID uuid.UUID
	ProjectID      uuid.UUID
	TaskPoints     float64
	KaizenPoints   float64
	TotalPoints    float64
	Sequence       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUserGamePoints returns a zero-point aggregate for the given identity.
func NewUserGamePoints(userID, gameID, organizationID, projectID uuid.UUID, now time.Time) UserGamePoints {
	return UserGamePoints{
		UserID:         userID,
		GameID:         gameID,
		OrganizationID: organizationID,
		ProjectID:      projectID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithPoints replaces both point fields wholesale, recomputes the total
// and bumps the sequence. It never fails.
func (p UserGamePoints) WithPoints(taskPoints, kaizenPoints float64, now time.Time) UserGamePoints {
	p.TaskPoints = taskPoints
	p.KaizenPoints = kaizenPoints
	p.TotalPoints = taskPoints + kaizenPoints
	p.Sequence++
	p.UpdatedAt = now
	return p
}

// TeamGamePoints is the per-team point aggregate for a single game,
// keyed by (TeamID, GameID). Same semantics as UserGamePoints.
type TeamGamePoints struct {
	TeamID         uuid.UUID
	GameID         uuid.UUID
	OrganizationID uuid.UUID
	ProjectID      uuid.UUID
	TaskPoints     float64
	KaizenPoints   float64
	TotalPoints    float64
	Sequence       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTeamGamePoints returns a zero-point aggregate for the given identity.
func NewTeamGamePoints(teamID, gameID, organizationID, projectID uuid.UUID, now time.Time) TeamGamePoints {
	return TeamGamePoints{
		TeamID:         teamID,
		GameID:         gameID,
		OrganizationID: organizationID,
		ProjectID:      projectID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithPoints replaces both point fields wholesale, recomputes the total
// and bumps the sequence.
func (p TeamGamePoints) WithPoints(taskPoints, kaizenPoints float64, now time.Time) TeamGamePoints {
	p.TaskPoints = taskPoints
	p.KaizenPoints = kaizenPoints
	p.TotalPoints = taskPoints + kaizenPoints
	p.Sequence++
	p.UpdatedAt = now
	return p
}

// GamePointsKind distinguishes the two per-game running totals.
type GamePointsKind string

const (
	GamePointsKindKaizen GamePointsKind = "KAIZEN"
	GamePointsKindTask   GamePointsKind = "TASK"
)

// Valid reports whether k is a known kind.
func (k GamePointsKind) Valid() bool {
	return k == GamePointsKindKaizen || k == GamePointsKindTask
}

// GamePoints is a per-game running total, keyed by GameID. It backs both
// the kaizen and the task totals (Kind selects the table).
//
// Points may go negative: deductions carry no floor at this layer.
type GamePoints struct {
	GameID         uuid.UUID
	OrganizationID uuid.UUID
	ProjectID      uuid.UUID
	Kind           GamePointsKind
	Points         float64
	Sequence       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewGamePoints returns a zero-point running total for the given game.
func NewGamePoints(kind GamePointsKind, gameID, organizationID, projectID uuid.UUID, now time.Time) GamePoints {
	return GamePoints{
		GameID:         gameID,
		OrganizationID: organizationID,
		ProjectID:      projectID,
		Kind:           kind,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AddPoints adds delta to the running total and bumps the sequence.
// Delta may be negative or zero.
func (p GamePoints) AddPoints(delta float64, now time.Time) GamePoints {
	p.Points += delta
	p.Sequence++
	p.UpdatedAt = now
	return p
}
