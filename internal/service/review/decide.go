package review

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// RequestRevision sends an AIP under review back to its submitter with a note.
func (s *Service) RequestRevision(ctx context.Context, aipID uuid.UUID, note string) (*domain.ReviewState, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, domain.NewValidationError("note", "Revision comments are required.")
	}

	return s.decide(ctx, aipID, decision{
		action:       domain.ReviewActionRequestRevision,
		next:         domain.AIPStatusForRevision,
		activity:     domain.ActivityActionRevisionRequested,
		stateMessage: "Request Revision is only allowed when the AIP is under review.",
		note:         &note,
	})
}

// Publish releases an AIP under review to the public. The note is optional.
func (s *Service) Publish(ctx context.Context, aipID uuid.UUID, note *string) (*domain.ReviewState, error) {
	return s.decide(ctx, aipID, decision{
		action:       domain.ReviewActionPublish,
		next:         domain.AIPStatusPublished,
		activity:     domain.ActivityActionAIPPublished,
		stateMessage: "Publish is only allowed when the AIP is under review.",
		note:         domain.TrimOptional(note),
	})
}

type decision struct {
	action       domain.ReviewAction
	next         domain.AIPStatus
	activity     domain.ActivityAction
	stateMessage string
	note         *string
}

func (s *Service) decide(ctx context.Context, aipID uuid.UUID, d decision) (*domain.ReviewState, error) {
	t, err := s.load(ctx, aipID)
	if err != nil {
		return nil, err
	}
	if err := requireDecisionRights(t, d.stateMessage); err != nil {
		return nil, err
	}

	name, err := s.reviewerName(ctx, t.actor.UserID)
	if err != nil {
		return nil, err
	}

	event, err := s.transition(ctx, t, domain.ReviewEvent{
		AIPID:        t.aip.ID,
		ReviewerID:   t.actor.UserID,
		ReviewerName: name,
		Action:       d.action,
		Note:         d.note,
	}, d.next)
	if err != nil {
		return nil, err
	}

	metadata := map[string]any{
		"reviewer_name": name,
		"fiscal_year":   t.aip.FiscalYear,
	}
	if d.note != nil {
		metadata["note"] = *d.note
	}
	s.audit(ctx, t, d.activity, metadata)

	s.log.InfoContext(ctx, "aip review decision recorded",
		slog.String("aip_id", t.aip.ID.String()),
		slog.String("reviewer_id", t.actor.UserID.String()),
		slog.String("action", d.action.String()),
		slog.String("status", t.aip.Status.String()),
	)

	state := domain.NewReviewState(*t.aip, append([]domain.ReviewEvent{event}, t.events...))
	return &state, nil
}
