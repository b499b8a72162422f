// Package review implements the AIP review workflow: claiming an AIP for
// review, requesting a revision and publishing it.
//
// Claim ownership is never stored. It is recomputed on every call from the
// newest review event, so two concurrent claims on the same AIP both succeed
// and the later event wins.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

type aipRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AIP, error)
	ListForCity(ctx context.Context, cityID uuid.UUID) ([]domain.SubmissionRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AIPStatus) (time.Time, error)
}

type reviewRepo interface {
	Append(ctx context.Context, event domain.ReviewEvent) (domain.ReviewEvent, error)
	ListByAIP(ctx context.Context, aipID uuid.UUID) ([]domain.ReviewEvent, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type activityLogger interface {
	Log(ctx context.Context, record domain.ActivityRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the review state machine.
type Service struct {
	aips     aipRepo
	reviews  reviewRepo
	profiles profileRepo
	activity activityLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new review Service.
func NewService(
	log *slog.Logger,
	aips aipRepo,
	reviews reviewRepo,
	profiles profileRepo,
	activity activityLogger,
	tx txManager,
) *Service {
	return &Service{
		aips:     aips,
		reviews:  reviews,
		profiles: profiles,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "review"),
	}
}
