package submission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// UpdateResult is a posted progress update with its stored photos.
type UpdateResult struct {
	Update    domain.ProjectUpdate
	Media     []domain.MediaObject
	MediaURLs []string
}

// PostProjectUpdate records a progress update with up to the configured
// number of photos against a project under a published AIP.
//
// The update row is inserted first because photo keys embed its id. Photos
// are then uploaded in order, their metadata rows inserted and the activity
// entry appended. A failure in any of those steps removes every uploaded
// photo, deletes the update row and returns the triggering error.
func (s *Service) PostProjectUpdate(ctx context.Context, in UpdateInput) (*UpdateResult, error) {
	actor, err := s.resolver.ActorFor(ctx, in.Scope)
	if err != nil {
		return nil, err
	}

	form, err := in.parse(s.limits)
	if err != nil {
		return nil, err
	}

	project, err := s.resolver.ResolveProject(ctx, actor, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	if project.AIPStatus != domain.AIPStatusPublished {
		return nil, domain.NewStateError("Posting updates is only allowed for projects under published AIPs.")
	}

	update, err := s.updates.Create(ctx, domain.ProjectUpdate{
		ProjectID:       project.ID,
		AIPID:           project.AIPID,
		Title:           form.title,
		Description:     form.description,
		ProgressPercent: form.progressPercent,
		AttendanceCount: form.attendanceCount,
		PostedBy:        actor.UserID,
		Status:          domain.UpdateStatusActive,
	})
	if err != nil {
		return nil, domain.StorageFailure("create project update", err)
	}

	uploaded := make([]domain.UploadedObject, 0, len(form.photos))
	media, err := func() ([]domain.MediaObject, error) {
		for i, photo := range form.photos {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			obj, err := s.upload(ctx, photoKey(project, update.ID, i+1, photo.ext), photo)
			if err != nil {
				return nil, err
			}
			uploaded = append(uploaded, obj)
		}

		media, err := s.updates.CreateMedia(ctx, mediaRows(update, uploaded))
		if err != nil {
			return nil, domain.StorageFailure("save update media", err)
		}

		record := projectActivity(actor, project, domain.ActivityActionProjectUpdated,
			s.updateMetadata(ctx, actor, project, update, media))
		if err := s.activity.Log(ctx, record); err != nil {
			return nil, domain.StorageFailure("append activity log", err)
		}
		return media, nil
	}()
	if err != nil {
		s.rollbackUpdate(ctx, update.ID, uploaded)
		return nil, err
	}

	s.log.InfoContext(ctx, "project update posted",
		slog.String("project_id", project.ID.String()),
		slog.String("update_id", update.ID.String()),
		slog.Int("photos", len(media)),
		slog.String("user_id", actor.UserID.String()),
	)

	return &UpdateResult{Update: update, Media: media, MediaURLs: mediaURLs(media)}, nil
}

// rollbackUpdate unwinds a failed update in reverse order: photos first,
// then the update row. Media rows go with the update row.
func (s *Service) rollbackUpdate(ctx context.Context, updateID uuid.UUID, uploaded []domain.UploadedObject) {
	s.removeUploaded(ctx, uploaded)

	if err := s.updates.Delete(context.WithoutCancel(ctx), updateID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.ErrorContext(ctx, "rollback of project update failed",
			slog.String("update_id", updateID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func mediaRows(update domain.ProjectUpdate, uploaded []domain.UploadedObject) []domain.MediaObject {
	rows := make([]domain.MediaObject, 0, len(uploaded))
	for _, o := range uploaded {
		rows = append(rows, domain.MediaObject{
			UpdateID:  update.ID,
			ProjectID: update.ProjectID,
			BucketID:  o.BucketID,
			ObjectKey: o.ObjectKey,
			MimeType:  o.MimeType,
			SizeBytes: o.SizeBytes,
		})
	}
	return rows
}

func mediaURLs(media []domain.MediaObject) []string {
	urls := make([]string, 0, len(media))
	for _, m := range media {
		urls = append(urls, MediaURL(m.ID))
	}
	return urls
}

// updateMetadata builds the activity entry of a posted update, including a
// snapshot of the uploader's profile.
func (s *Service) updateMetadata(
	ctx context.Context,
	actor domain.Actor,
	project *domain.ScopedProject,
	update domain.ProjectUpdate,
	media []domain.MediaObject,
) map[string]any {
	urls := mediaURLs(media)
	updateType := "update"
	if len(urls) > 0 {
		updateType = "photo"
	}

	var attendance any
	if update.AttendanceCount != nil {
		attendance = *update.AttendanceCount
	}

	name, email, position := s.uploaderSnapshot(ctx, actor.UserID)

	return map[string]any{
		"update_title":      update.Title,
		"update_caption":    project.RefCode,
		"update_body":       update.Description,
		"progress_percent":  update.ProgressPercent,
		"attendance_count":  attendance,
		"media_urls":        urls,
		"update_type":       updateType,
		"uploader_name":     name,
		"uploader_email":    email,
		"uploader_position": position,
	}
}

// uploaderSnapshot never fails: an unreadable profile yields "Unknown".
func (s *Service) uploaderSnapshot(ctx context.Context, userID uuid.UUID) (name string, email, position any) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "uploader profile lookup failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
		return "Unknown", nil, nil
	}

	if e := domain.TrimOptional(profile.Email); e != nil {
		email = *e
	}
	if profile.Role != "" {
		position = profile.Role.String()
	}
	return profile.DisplayName(), email, position
}
