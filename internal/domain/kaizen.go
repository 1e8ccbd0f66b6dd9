package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// KaizenStatus is the lifecycle state of a kaizen proposal.
type KaizenStatus string

const (
	KaizenStatusActive   KaizenStatus = "ACTIVE"
	KaizenStatusDone     KaizenStatus = "DONE"
	KaizenStatusApproved KaizenStatus = "APPROVED"
	KaizenStatusArchived KaizenStatus = "ARCHIVED"
)

// Valid reports whether s is a known status.
func (s KaizenStatus) Valid() bool {
	switch s {
	case KaizenStatusActive, KaizenStatusDone, KaizenStatusApproved, KaizenStatusArchived:
		return true
	}
	return false
}

// Kaizen is a continuous-improvement proposal tracked through its lifecycle
// to approval. Points is the value credited to the game on approval.
type Kaizen struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	ProjectID      uuid.UUID
	GameID         uuid.UUID
	AuthorID       uuid.UUID
	Title          string
	Description    *string
	Status         KaizenStatus
	Points         float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Approve transitions DONE -> APPROVED. Any other source state fails:
// APPROVED with ErrConflict ("already approved"), ACTIVE and ARCHIVED with
// a business-rule violation.
func (k Kaizen) Approve(now time.Time) (Kaizen, error) {
	switch k.Status {
	case KaizenStatusApproved:
		return Kaizen{}, fmt.Errorf("kaizen %s already approved: %w", k.ID, ErrConflict)
	case KaizenStatusDone:
		k.Status = KaizenStatusApproved
		k.UpdatedAt = now
		return k, nil
	default:
		return Kaizen{}, fmt.Errorf("kaizen %s must be completed (DONE) before being approved: %w", k.ID, ErrConflict)
	}
}

// Complete transitions ACTIVE -> DONE.
func (k Kaizen) Complete(now time.Time) (Kaizen, error) {
	if k.Status != KaizenStatusActive {
		return Kaizen{}, fmt.Errorf("kaizen %s is not active: %w", k.ID, ErrConflict)
	}
	k.Status = KaizenStatusDone
	k.UpdatedAt = now
	return k, nil
}

// Archive transitions any non-archived state to ARCHIVED.
func (k Kaizen) Archive(now time.Time) (Kaizen, error) {
	if k.Status == KaizenStatusArchived {
		return Kaizen{}, fmt.Errorf("kaizen %s already archived: %w", k.ID, ErrConflict)
	}
	k.Status = KaizenStatusArchived
	k.UpdatedAt = now
	return k, nil
}

// KaizenType is an organization-scoped kaizen category with its point values.
// Sequence is bumped on every edit and doubles as the optimistic-lock token
// at the storage boundary.
type KaizenType struct {
	ID                  uuid.UUID
	OrganizationID      uuid.UUID
	Name                string
	Points              float64
	IdeaPoints          *float64
	IdeaExecutionPoints *float64
	Sequence            int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewKaizenType returns a category with a fresh ID and sequence 0.
func NewKaizenType(organizationID uuid.UUID, name string, points float64, ideaPoints, ideaExecutionPoints *float64, now time.Time) KaizenType {
	return KaizenType{
		ID:                  uuid.New(),
		OrganizationID:      organizationID,
		Name:                name,
		Points:              points,
		IdeaPoints:          ideaPoints,
		IdeaExecutionPoints: ideaExecutionPoints,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// WithValues replaces the editable fields and bumps the sequence.
func (t KaizenType) WithValues(name string, points float64, ideaPoints, ideaExecutionPoints *float64, now time.Time) KaizenType {
	t.Name = name
	t.Points = points
	t.IdeaPoints = ideaPoints
	t.IdeaExecutionPoints = ideaExecutionPoints
	t.Sequence++
	t.UpdatedAt = now
	return t
}
