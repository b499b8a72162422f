package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// Claim makes the actor the owner of the AIP's review. A pending AIP moves
// to under_review. An AIP already under review can be re-claimed by its
// owner, taken over by an admin, or claimed by anyone when no live claim exists.
func (s *Service) Claim(ctx context.Context, aipID uuid.UUID) (*domain.ReviewState, error) {
	t, err := s.load(ctx, aipID)
	if err != nil {
		return nil, err
	}

	previous := t.aip.Status
	switch previous {
	case domain.AIPStatusPendingReview:
	case domain.AIPStatusUnderReview:
		if owner := t.owner(); owner != nil && owner.ReviewerID != t.actor.UserID && !t.actor.IsAdmin() {
			return nil, errClaimedByOther
		}
	default:
		return nil, domain.NewStateError("Claim Review is only allowed when the AIP is pending review or under review.")
	}

	name, err := s.reviewerName(ctx, t.actor.UserID)
	if err != nil {
		return nil, err
	}

	event, err := s.transition(ctx, t, domain.ReviewEvent{
		AIPID:        t.aip.ID,
		ReviewerID:   t.actor.UserID,
		ReviewerName: name,
		Action:       domain.ReviewActionClaim,
	}, domain.AIPStatusUnderReview)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, t, domain.ActivityActionReviewClaimed, map[string]any{
		"previous_status": previous.String(),
		"reviewer_name":   name,
		"fiscal_year":     t.aip.FiscalYear,
	})

	s.log.InfoContext(ctx, "aip review claimed",
		slog.String("aip_id", t.aip.ID.String()),
		slog.String("reviewer_id", t.actor.UserID.String()),
		slog.String("previous_status", previous.String()),
	)

	state := domain.NewReviewState(*t.aip, append([]domain.ReviewEvent{event}, t.events...))
	return &state, nil
}
