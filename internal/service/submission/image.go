package submission

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// imageUpload is a validated image with its storage extension and MIME type.
type imageUpload struct {
	file     ImageFile
	ext      string
	mimeType string
}

// checkImage accepts JPEG and PNG files up to maxBytes. The type is taken
// from the declared MIME type, falling back to the file extension.
func checkImage(field, label string, f ImageFile, maxBytes int64) (imageUpload, error) {
	ext, mimeType, ok := imageType(f)
	if !ok {
		return imageUpload{}, domain.NewValidationError(field, label+" must be a JPG or PNG image.")
	}
	if f.Size > maxBytes {
		return imageUpload{}, domain.NewValidationError(field,
			fmt.Sprintf("%s must be %s or below.", label, formatLimit(maxBytes)))
	}
	return imageUpload{file: f, ext: ext, mimeType: mimeType}, nil
}

// formatLimit renders a byte limit in MB or KB with at most one decimal.
func formatLimit(n int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	switch {
	case n >= mib:
		return oneDecimal(float64(n)/mib) + "MB"
	case n >= kib:
		return oneDecimal(float64(n)/kib) + "KB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func imageType(f ImageFile) (ext, mimeType string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(f.ContentType)) {
	case "image/jpeg":
		return "jpg", "image/jpeg", true
	case "image/png":
		return "png", "image/png", true
	}
	switch strings.ToLower(path.Ext(f.Filename)) {
	case ".jpg", ".jpeg":
		return "jpg", "image/jpeg", true
	case ".png":
		return "png", "image/png", true
	}
	return "", "", false
}

func coverKey(p *domain.ScopedProject, ext string) string {
	return fmt.Sprintf("%s/projects/%s/cover-%s.%s", p.AIPID, p.ID, uuid.NewString(), ext)
}

func photoKey(p *domain.ScopedProject, updateID uuid.UUID, ordinal int, ext string) string {
	return fmt.Sprintf("%s/projects/%s/updates/%s/%02d-%s.%s", p.AIPID, p.ID, updateID, ordinal, uuid.NewString(), ext)
}

// MediaURL returns the proxy URL that serves an update photo.
func MediaURL(mediaID uuid.UUID) string {
	return "/api/projects/media/" + mediaID.String()
}

// upload writes one image to the media bucket.
func (s *Service) upload(ctx context.Context, key string, img imageUpload) (domain.UploadedObject, error) {
	if img.file.Open == nil {
		return domain.UploadedObject{}, domain.StorageFailure("upload image", fmt.Errorf("%s: no content", key))
	}
	body, err := img.file.Open()
	if err != nil {
		return domain.UploadedObject{}, domain.StorageFailure("open image", err)
	}
	defer body.Close()

	if err := s.store.Put(ctx, s.limits.Bucket, key, body, img.file.Size, img.mimeType); err != nil {
		return domain.UploadedObject{}, domain.StorageFailure("upload image", err)
	}

	return domain.UploadedObject{
		BucketID:  s.limits.Bucket,
		ObjectKey: key,
		MimeType:  img.mimeType,
		SizeBytes: img.file.Size,
	}, nil
}

// removeUploaded deletes objects written earlier in a failed call. It runs on
// a context detached from cancellation so an aborted request still unwinds.
// Failures are logged and never replace the caller's error.
func (s *Service) removeUploaded(ctx context.Context, objects []domain.UploadedObject) {
	if len(objects) == 0 {
		return
	}
	cleanupCtx := context.WithoutCancel(ctx)

	byBucket := make(map[string][]string)
	var buckets []string
	for _, o := range objects {
		if _, seen := byBucket[o.BucketID]; !seen {
			buckets = append(buckets, o.BucketID)
		}
		byBucket[o.BucketID] = append(byBucket[o.BucketID], o.ObjectKey)
	}

	for _, bucket := range buckets {
		keys := byBucket[bucket]
		if err := s.store.Remove(cleanupCtx, bucket, keys); err != nil {
			s.log.ErrorContext(ctx, "cleanup of uploaded objects failed",
				slog.String("bucket", bucket),
				slog.Any("keys", keys),
				slog.String("error", err.Error()),
			)
		}
	}
}
