// Package projectupdate implements project update and media metadata persistence using PostgreSQL.
package projectupdate

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// Repo provides project update persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project update repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a project update and returns it with the generated id and created_at.
func (r *Repo) Create(ctx context.Context, u domain.ProjectUpdate) (domain.ProjectUpdate, error) {
	if u.Status == "" {
		u.Status = domain.UpdateStatusActive
	}

	query := postgres.Builder().
		Insert("project_updates").
		Columns("project_id", "aip_id", "title", "description", "progress_percent",
			"attendance_count", "posted_by", "status").
		Values(u.ProjectID, u.AIPID, u.Title, u.Description, u.ProgressPercent,
			u.AttendanceCount, u.PostedBy, string(u.Status)).
		Suffix("RETURNING id, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.ProjectUpdate{}, fmt.Errorf("build project update insert: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&u.ID, &u.CreatedAt); err != nil {
		return domain.ProjectUpdate{}, postgres.MapError(err, "project_update", u.ProjectID)
	}

	return u, nil
}

// Delete removes a project update. Media rows cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := postgres.Builder().
		Delete("project_updates").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build project update delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "project_update", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project_update %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CreateMedia inserts one metadata row per uploaded photo in a single
// statement and returns the rows with their generated ids.
func (r *Repo) CreateMedia(ctx context.Context, media []domain.MediaObject) ([]domain.MediaObject, error) {
	if len(media) == 0 {
		return nil, nil
	}

	query := postgres.Builder().
		Insert("project_update_media").
		Columns("update_id", "project_id", "bucket_id", "object_name", "mime_type", "size_bytes").
		Suffix("RETURNING id, object_name, created_at")
	for _, m := range media {
		query = query.Values(m.UpdateID, m.ProjectID, m.BucketID, m.ObjectKey, m.MimeType, m.SizeBytes)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build media insert: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "project_update_media", media[0].UpdateID)
	}
	defer rows.Close()

	byKey := make(map[string]int, len(media))
	for i, m := range media {
		byKey[m.ObjectKey] = i
	}

	out := make([]domain.MediaObject, len(media))
	copy(out, media)
	for rows.Next() {
		var (
			id  uuid.UUID
			key string
			m   domain.MediaObject
		)
		if err := rows.Scan(&id, &key, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan media row: %w", err)
		}
		i, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("media insert returned unknown object %q", key)
		}
		out[i].ID = id
		out[i].CreatedAt = m.CreatedAt
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "project_update_media", media[0].UpdateID)
	}

	return out, nil
}
