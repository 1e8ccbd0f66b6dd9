package notification

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kaizenly/gamify-backend/internal/domain"
)

// MaxMarkBatch bounds how many notification IDs one mark-as-read call accepts.
const MaxMarkBatch = 100

// CreateInput holds the parameters for storing a notification for a user.
type CreateInput struct {
	UserID uuid.UUID
	Title  string
	Body   *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
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

// MarkAsReadInput holds the notification IDs to mark as read.
type MarkAsReadInput struct {
	IDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MarkAsReadInput) Validate() error {
	var errs []domain.FieldError
	if len(i.IDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "required"})
	}
	if len(i.IDs) > MaxMarkBatch {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "max 100"})
	}
	for _, id := range i.IDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "ids", Message: "must not contain the nil UUID"})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing the caller's notifications.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
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
