package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebNotification is an in-app notification row owned by one user within
// one organization.
type WebNotification struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Title          string
	Body           *string
	Read           bool
	ReadAt         *time.Time
	CreatedAt      time.Time
}

// BelongsTo reports whether the notification is owned by the given
// user within the given organization.
func (n WebNotification) BelongsTo(userID, organizationID uuid.UUID) bool {
	return n.UserID == userID && n.OrganizationID == organizationID
}

// MarkRead flips the read flag. Marking an already-read notification
// is a no-op that keeps the original ReadAt.
func (n WebNotification) MarkRead(now time.Time) WebNotification {
	if n.Read {
		return n
	}
	n.Read = true
	n.ReadAt = &now
	return n
}
