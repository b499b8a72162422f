package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/heartmarshall/aip-review-backend/internal/adapter/objectstore/fs"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/objectstore/s3"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/aip"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/projectupdate"
	reviewrepo "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres/review"
	"github.com/heartmarshall/aip-review-backend/internal/auth"
	"github.com/heartmarshall/aip-review-backend/internal/config"
	"github.com/heartmarshall/aip-review-backend/internal/service/review"
	"github.com/heartmarshall/aip-review-backend/internal/service/scope"
	"github.com/heartmarshall/aip-review-backend/internal/service/submission"
	"github.com/heartmarshall/aip-review-backend/internal/transport/middleware"
	"github.com/heartmarshall/aip-review-backend/internal/transport/rest"
)

// objectStore is the object store surface shared by the s3 and fs backends.
type objectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	CheckBucket(ctx context.Context, bucket string) error
	Put(ctx context.Context, bucket, key string, body io.Reader, size int64, mimeType string) error
	Remove(ctx context.Context, bucket string, keys []string) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the object store, wires services and serves HTTP until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_backend", cfg.Storage.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	store, err := newObjectStore(cfg.Storage)
	if err != nil {
		return err
	}
	if err := store.EnsureBucket(ctx, cfg.Storage.MediaBucket); err != nil {
		return fmt.Errorf("prepare media bucket: %w", err)
	}

	// Repositories
	txm := postgres.NewTxManager(pool)
	aipRepo := aip.New(pool)
	reviewRepo := reviewrepo.New(pool)
	profileRepo := profile.New(pool)
	activityRepo := activity.New(pool)
	projectRepo := project.New(pool)
	updateRepo := projectupdate.New(pool)

	// Services
	resolver := scope.NewResolver(logger, projectRepo)
	reviewSvc := review.NewService(logger, aipRepo, reviewRepo, profileRepo, activityRepo, txm)
	submissionSvc := submission.NewService(logger, resolver, projectRepo, updateRepo, store,
		profileRepo, activityRepo, txm, submission.Limits{
			Bucket:          cfg.Storage.MediaBucket,
			MaxImageBytes:   cfg.Upload.MaxImageBytes,
			MaxUpdatePhotos: cfg.Upload.MaxUpdatePhotos,
		})

	// Transport
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var writeLimit middleware.Middleware
	if cfg.RateLimit.WritesPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		writeLimit = limiter.Limit(cfg.RateLimit.WritesPerMinute)
	}

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, store, cfg.Storage.MediaBucket, BuildVersion()),
		Review:  rest.NewReviewHandler(reviewSvc, logger),
		Project: rest.NewProjectHandler(submissionSvc, cfg.Upload.MaxImageBytes, cfg.Upload.MaxUpdatePhotos, logger),
	}, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(jwtManager, logger),
			middleware.Logger(logger),
		},
		Writes: []middleware.Middleware{writeLimit},
	})

	srv := newServer(ctx, cfg.Server, router)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	if err := serve(ctx, logger, srv, ln, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

func newObjectStore(cfg config.StorageConfig) (objectStore, error) {
	if cfg.UsesS3() {
		store, err := s3.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("create s3 store: %w", err)
		}
		return store, nil
	}
	store, err := fs.New(cfg.LocalRoot)
	if err != nil {
		return nil, fmt.Errorf("create fs store: %w", err)
	}
	return store, nil
}
