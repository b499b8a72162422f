package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Upload.validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if strings.TrimSpace(s.MediaBucket) == "" {
		return fmt.Errorf("media_bucket is required")
	}

	switch strings.ToLower(s.Backend) {
	case "s3":
		if s.Endpoint == "" {
			return fmt.Errorf("endpoint is required for the s3 backend")
		}
		if s.AccessKey == "" || s.SecretKey == "" {
			return fmt.Errorf("access_key and secret_key are required for the s3 backend")
		}
	case "fs":
		if strings.TrimSpace(s.LocalRoot) == "" {
			return fmt.Errorf("local_root is required for the fs backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (want s3 or fs)", s.Backend)
	}

	return nil
}

func (u *UploadConfig) validate() error {
	if u.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be > 0 (got %d)", u.MaxImageBytes)
	}
	if u.MaxUpdatePhotos < 0 {
		return fmt.Errorf("max_update_photos must be >= 0 (got %d)", u.MaxUpdatePhotos)
	}
	return nil
}
