// Package fs implements the object store on the local filesystem.
// Objects live at {root}/{bucket}/{key}.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps objects as plain files under a root directory.
type Store struct {
	root string
}

// New creates a Store rooted at dir.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("fs store: root directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("fs store: resolve root: %w", err)
	}
	return &Store{root: abs}, nil
}

// EnsureBucket creates the bucket directory.
func (s *Store) EnsureBucket(_ context.Context, bucket string) error {
	dir, err := s.path(bucket, "")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fs store: create bucket %s: %w", bucket, err)
	}
	return nil
}

// CheckBucket reports an error unless the bucket directory exists.
func (s *Store) CheckBucket(_ context.Context, bucket string) error {
	dir, err := s.path(bucket, "")
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("fs store: check bucket %s: %w", bucket, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("fs store: bucket %s is not a directory", bucket)
	}
	return nil
}

// Put writes body to bucket/key. A partially written file is removed on failure.
func (s *Store) Put(ctx context.Context, bucket, key string, body io.Reader, size int64, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.path(bucket, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("fs store: create dir for %s: %w", key, err)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("fs store: create %s: %w", key, err)
	}

	written, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr == nil && closeErr == nil && size >= 0 && written != size {
		copyErr = fmt.Errorf("wrote %d bytes, expected %d", written, size)
	}
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(target)
		return fmt.Errorf("fs store: write %s: %w", key, errors.Join(copyErr, closeErr))
	}
	return nil
}

// Remove deletes the given keys. Missing keys are not an error.
func (s *Store) Remove(_ context.Context, bucket string, keys []string) error {
	var errs []error
	for _, key := range keys {
		target, err := s.path(bucket, key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("fs store: remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// path resolves bucket/key under the root and rejects anything escaping it.
func (s *Store) path(bucket, key string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, `/\`) || bucket == "." || bucket == ".." {
		return "", fmt.Errorf("fs store: invalid bucket %q", bucket)
	}
	joined := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	bucketRoot := filepath.Join(s.root, bucket)
	if joined != bucketRoot && !strings.HasPrefix(joined, bucketRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("fs store: invalid key %q", key)
	}
	return joined, nil
}
