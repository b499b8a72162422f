// Package submission implements the project write pipeline: detail edits
// and progress updates with photos.
//
// Rows and uploaded objects live in different stores with no shared
// transaction. Every write that fails after an upload unwinds the uploads
// and any row inserted by the same call before the error is returned.
package submission

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

type projectResolver interface {
	ActorFor(ctx context.Context, routeScope domain.ScopeKind) (domain.Actor, error)
	ResolveProject(ctx context.Context, actor domain.Actor, ref string) (*domain.ScopedProject, error)
}

type projectRepo interface {
	UpsertHealthDetails(ctx context.Context, d domain.HealthDetails) error
	UpsertInfrastructureDetails(ctx context.Context, d domain.InfrastructureDetails) error
	ApplyPatch(ctx context.Context, projectID uuid.UUID, patch domain.ProjectPatch) error
}

type updateRepo interface {
	Create(ctx context.Context, u domain.ProjectUpdate) (domain.ProjectUpdate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateMedia(ctx context.Context, media []domain.MediaObject) ([]domain.MediaObject, error)
}

type objectStore interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, size int64, mimeType string) error
	Remove(ctx context.Context, bucket string, keys []string) error
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

// Limits bounds uploaded images and names their bucket.
type Limits struct {
	Bucket          string
	MaxImageBytes   int64
	MaxUpdatePhotos int
}

// Default upload limits.
const (
	DefaultBucket          = "project-media"
	DefaultMaxImageBytes   = 5 * 1024 * 1024
	DefaultMaxUpdatePhotos = 5
)

// Service runs the submission pipeline.
type Service struct {
	resolver projectResolver
	projects projectRepo
	updates  updateRepo
	store    objectStore
	profiles profileRepo
	activity activityLogger
	tx       txManager
	limits   Limits
	log      *slog.Logger
}

// NewService creates a new submission Service. Zero limits fall back to the defaults.
func NewService(
	log *slog.Logger,
	resolver projectResolver,
	projects projectRepo,
	updates updateRepo,
	store objectStore,
	profiles profileRepo,
	activity activityLogger,
	tx txManager,
	limits Limits,
) *Service {
	if limits.Bucket == "" {
		limits.Bucket = DefaultBucket
	}
	if limits.MaxImageBytes <= 0 {
		limits.MaxImageBytes = DefaultMaxImageBytes
	}
	if limits.MaxUpdatePhotos <= 0 {
		limits.MaxUpdatePhotos = DefaultMaxUpdatePhotos
	}

	return &Service{
		resolver: resolver,
		projects: projects,
		updates:  updates,
		store:    store,
		profiles: profiles,
		activity: activity,
		tx:       tx,
		limits:   limits,
		log:      log.With("service", "submission"),
	}
}
