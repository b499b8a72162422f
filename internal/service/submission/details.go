package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// DetailsResult describes a saved detail edit.
type DetailsResult struct {
	ProjectID uuid.UUID
	Kind      domain.ProjectCategory
	// CoverKey is the object key of the new cover image, if one was uploaded.
	CoverKey *string
}

// SubmitProjectDetails writes the detail record of a health or
// infrastructure project under a published AIP and patches the project row.
// An optional cover image is uploaded before any row is written and removed
// again if the rows cannot be saved.
func (s *Service) SubmitProjectDetails(ctx context.Context, in DetailsInput) (*DetailsResult, error) {
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
	if project.Category != form.kind {
		return nil, domain.NewValidationError("kind", "Project kind does not match route payload.")
	}
	if project.AIPStatus != domain.AIPStatusPublished {
		return nil, domain.NewStateError("Add information is only allowed for projects under published AIPs.")
	}

	var cover *domain.UploadedObject
	if form.cover != nil {
		obj, err := s.upload(ctx, coverKey(project, form.cover.ext), *form.cover)
		if err != nil {
			return nil, err
		}
		cover = &obj
	}

	patch := domain.ProjectPatch{
		Total:              form.total,
		Status:             form.status,
		ImplementingAgency: form.implementingOffice,
	}
	if cover != nil {
		patch.ImageURL = &cover.ObjectKey
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		switch {
		case form.health != nil:
			d := *form.health
			d.ProjectID = project.ID
			d.UpdatedBy = actor.UserID
			if err := s.projects.UpsertHealthDetails(txCtx, d); err != nil {
				return fmt.Errorf("upsert health details: %w", err)
			}
		case form.infra != nil:
			d := *form.infra
			d.ProjectID = project.ID
			d.UpdatedBy = actor.UserID
			if err := s.projects.UpsertInfrastructureDetails(txCtx, d); err != nil {
				return fmt.Errorf("upsert infrastructure details: %w", err)
			}
			patch.SourceOfFunds = form.fundingSource
			patch.StartDate = &d.StartDate
			patch.CompletionDate = &d.TargetCompletionDate
		}

		if err := s.projects.ApplyPatch(txCtx, project.ID, patch); err != nil {
			return fmt.Errorf("patch project: %w", err)
		}
		return nil
	})
	if err != nil {
		if cover != nil {
			s.removeUploaded(ctx, []domain.UploadedObject{*cover})
		}
		return nil, domain.StorageFailure("save project details", err)
	}

	metadata := map[string]any{
		"project_kind":   form.kind.String(),
		"project_status": form.status.String(),
		"aip_ref_code":   project.RefCode,
		"cover_uploaded": cover != nil,
		"total":          form.total.String(),
	}
	if err := s.activity.Log(ctx, projectActivity(actor, project, domain.ActivityActionProjectInfoAdded, metadata)); err != nil {
		s.log.WarnContext(ctx, "activity log append failed",
			slog.String("project_id", project.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "project details saved",
		slog.String("project_id", project.ID.String()),
		slog.String("kind", form.kind.String()),
		slog.String("user_id", actor.UserID.String()),
	)

	result := &DetailsResult{ProjectID: project.ID, Kind: form.kind}
	if cover != nil {
		result.CoverKey = &cover.ObjectKey
	}
	return result, nil
}

func projectActivity(actor domain.Actor, p *domain.ScopedProject, action domain.ActivityAction, metadata map[string]any) domain.ActivityRecord {
	return domain.ActivityRecord{
		ActorID:     actor.UserID,
		Action:      action,
		EntityTable: "projects",
		EntityID:    p.ID,
		CityID:      p.CityID,
		BarangayID:  p.BarangayID,
		Metadata:    metadata,
	}
}
