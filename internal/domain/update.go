package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectUpdate is a dated progress report posted against a project.
type ProjectUpdate struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	AIPID           uuid.UUID
	Title           string
	Description     string
	ProgressPercent int
	AttendanceCount *int
	PostedBy        uuid.UUID
	Status          UpdateStatus
	CreatedAt       time.Time
}

// MediaObject is the metadata row of an uploaded update photo.
type MediaObject struct {
	ID        uuid.UUID
	UpdateID  uuid.UUID
	ProjectID uuid.UUID
	BucketID  string
	ObjectKey string
	MimeType  string
	SizeBytes int64
	CreatedAt time.Time
}

// UploadedObject references an object written to the object store during one call.
type UploadedObject struct {
	BucketID  string
	ObjectKey string
	MimeType  string
	SizeBytes int64
}
