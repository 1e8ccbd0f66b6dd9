package kaizen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

// CreateKaizenInput holds the parameters for submitting a kaizen proposal.
type CreateKaizenInput struct {
	ProjectID   uuid.UUID
	GameID      uuid.UUID
	TypeID      uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateKaizenInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if i.TypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 300 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveKaizenInput holds the parameters for approving a kaizen.
type ApproveKaizenInput struct {
	KaizenID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ApproveKaizenInput) Validate() error {
	if i.KaizenID == uuid.Nil {
		return domain.NewValidationError("kaizen_id", "required")
	}
	return nil
}

// CompleteKaizenInput holds the parameters for completing a kaizen.
type CompleteKaizenInput struct {
	KaizenID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CompleteKaizenInput) Validate() error {
	if i.KaizenID == uuid.Nil {
		return domain.NewValidationError("kaizen_id", "required")
	}
	return nil
}

// ListKaizensInput holds the parameters for listing a game's kaizens.
type ListKaizensInput struct {
	GameID uuid.UUID
	Status *domain.KaizenStatus
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListKaizensInput) Validate() error {
	var errs []domain.FieldError
	if i.GameID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if i.Status != nil && !i.Status.Valid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
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

// CreateKaizenTypeInput holds the parameters for creating a kaizen category.
type CreateKaizenTypeInput struct {
	Name                string
	Points              float64
	IdeaPoints          *float64
	IdeaExecutionPoints *float64
}

// Validate checks all fields and collects all errors.
func (i CreateKaizenTypeInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateKaizenTypeInput holds the parameters for editing a kaizen category.
type UpdateKaizenTypeInput struct {
	TypeID              uuid.UUID
	Name                string
	Points              float64
	IdeaPoints          *float64
	IdeaExecutionPoints *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateKaizenTypeInput) Validate() error {
	var errs []domain.FieldError

	if i.TypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
