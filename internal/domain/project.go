package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Project is a program or project line of an AIP.
type Project struct {
	ID          uuid.UUID
	AIPID       uuid.UUID
	RefCode     string
	Category    ProjectCategory
	Description string
	Total       *decimal.Decimal
	Status      *ProjectStatus
}

// ScopedProject is a project resolved within an actor's scope together with
// the parent AIP fields the submission pipeline needs.
type ScopedProject struct {
	ID         uuid.UUID
	AIPID      uuid.UUID
	RefCode    string
	Category   ProjectCategory
	AIPStatus  AIPStatus
	BarangayID *uuid.UUID
	CityID     *uuid.UUID
}

// HealthDetails is the detail record of a health project.
type HealthDetails struct {
	ProjectID               uuid.UUID
	ProgramName             string
	Description             *string
	TargetParticipants      string
	TotalTargetParticipants int
	UpdatedBy               uuid.UUID
	UpdatedAt               time.Time
}

// InfrastructureDetails is the detail record of an infrastructure project.
type InfrastructureDetails struct {
	ProjectID            uuid.UUID
	ProjectName          string
	ContractorName       string
	ContractCost         decimal.Decimal
	StartDate            string
	TargetCompletionDate string
	UpdatedBy            uuid.UUID
	UpdatedAt            time.Time
}

// ProjectPatch lists the parent project fields written by a detail edit.
// Nil pointers leave the column unchanged.
type ProjectPatch struct {
	Total              decimal.Decimal
	Status             ProjectStatus
	ImplementingAgency *string
	SourceOfFunds      *string
	StartDate          *string
	CompletionDate     *string
	ImageURL           *string
}
