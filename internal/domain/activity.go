package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is one append-only entry of the activity log.
type ActivityRecord struct {
	ID          uuid.UUID
	ActorID     uuid.UUID
	Action      ActivityAction
	EntityTable string
	EntityID    uuid.UUID
	CityID      *uuid.UUID
	BarangayID  *uuid.UUID
	Metadata    map[string]any
	CreatedAt   time.Time
}

// Profile is the public identity snapshot of a user.
type Profile struct {
	ID       uuid.UUID
	FullName *string
	Email    *string
	Role     UserRole
}

// DisplayName returns the trimmed full name or "Unknown".
func (p *Profile) DisplayName() string {
	if p == nil || p.FullName == nil {
		return "Unknown"
	}
	name := trimmed(*p.FullName)
	if name == "" {
		return "Unknown"
	}
	return name
}
