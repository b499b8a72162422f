// Package s3 implements the object store on any S3-compatible service.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/aip-review-backend/internal/config"
)

// Store writes and removes objects through the minio client.
type Store struct {
	client *minio.Client
	region string
}

// New creates a Store for the configured endpoint. No request is made until
// the first operation.
func New(cfg config.StorageConfig) (*Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("s3 store: endpoint is required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 store: create client: %w", err)
	}

	return &Store{client: client, region: cfg.Region}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("s3 store: check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("s3 store: create bucket %s: %w", bucket, err)
	}
	return nil
}

// CheckBucket reports an error unless the bucket is reachable and exists.
func (s *Store) CheckBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("s3 store: check bucket %s: %w", bucket, err)
	}
	if !exists {
		return fmt.Errorf("s3 store: bucket %s does not exist", bucket)
	}
	return nil
}

// Put uploads body under bucket/key. Existing objects are never overwritten
// by callers because keys carry a random suffix.
func (s *Store) Put(ctx context.Context, bucket, key string, body io.Reader, size int64, mimeType string) error {
	_, err := s.client.PutObject(ctx, bucket, key, body, size, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return fmt.Errorf("s3 store: put %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Remove deletes the given keys. Missing keys are not an error.
// All keys are attempted; the first failure is returned.
func (s *Store) Remove(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objects <- minio.ObjectInfo{Key: key}
	}
	close(objects)

	var firstErr error
	for rerr := range s.client.RemoveObjects(ctx, bucket, objects, minio.RemoveObjectsOptions{}) {
		if firstErr == nil {
			firstErr = fmt.Errorf("s3 store: remove %s/%s: %w", bucket, rerr.ObjectName, rerr.Err)
		}
	}
	return firstErr
}
