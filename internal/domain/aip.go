package domain

import (
	"time"

	"github.com/google/uuid"
)

// AIP is an Annual Investment Plan submitted by a barangay or a city.
// Exactly one of BarangayID and CityID is set.
type AIP struct {
	ID              uuid.UUID
	BarangayID      *uuid.UUID
	CityID          *uuid.UUID
	FiscalYear      int
	Title           string
	Status          AIPStatus
	StatusUpdatedAt time.Time
	CreatedAt       time.Time

	// ParentCityID is the city of the AIP's barangay. Nil for city AIPs.
	ParentCityID *uuid.UUID
	// BarangayName is filled for barangay AIPs when loaded for review listings.
	BarangayName *string
}

// ScopeKind returns the kind of administrative unit that owns the AIP.
func (a *AIP) ScopeKind() ScopeKind {
	if a.BarangayID != nil {
		return ScopeKindBarangay
	}
	return ScopeKindCity
}

// Scope returns the owning administrative unit.
func (a *AIP) Scope() Scope {
	if a.BarangayID != nil {
		return Scope{Kind: ScopeKindBarangay, ID: *a.BarangayID}
	}
	if a.CityID != nil {
		return Scope{Kind: ScopeKindCity, ID: *a.CityID}
	}
	return Scope{Kind: ScopeKindNone}
}

// SubmissionCounts aggregates submissions by status for a reviewer queue.
type SubmissionCounts struct {
	Total         int
	PendingReview int
	UnderReview   int
	ForRevision   int
	Published     int
}

// Add counts one AIP in the given status.
func (c *SubmissionCounts) Add(status AIPStatus) {
	c.Total++
	switch status {
	case AIPStatusPendingReview:
		c.PendingReview++
	case AIPStatusUnderReview:
		c.UnderReview++
	case AIPStatusForRevision:
		c.ForRevision++
	case AIPStatusPublished:
		c.Published++
	}
}
