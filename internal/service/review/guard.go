package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
	"github.com/heartmarshall/aip-review-backend/internal/service/scope"
	"github.com/heartmarshall/aip-review-backend/pkg/ctxutil"
)

var (
	errUnauthorized   = domain.Reason(domain.ErrUnauthorized, "Unauthorized.")
	errAIPNotFound    = domain.Reason(domain.ErrNotFound, "AIP not found.")
	errClaimedByOther = domain.Reason(domain.ErrUnauthorized, "This AIP is already claimed by another reviewer.")
)

// reviewTarget is everything a review action re-reads before deciding.
type reviewTarget struct {
	actor  domain.Actor
	aip    *domain.AIP
	events []domain.ReviewEvent
}

func (t reviewTarget) owner() *domain.ReviewOwner {
	return domain.CurrentOwner(t.aip.Status, t.events)
}

// load resolves the actor, the AIP and its review log, and checks the
// actor's reviewer role and jurisdiction.
func (s *Service) load(ctx context.Context, aipID uuid.UUID) (reviewTarget, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.CanReview() {
		return reviewTarget{}, errUnauthorized
	}

	aip, err := s.aips.GetByID(ctx, aipID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return reviewTarget{}, errAIPNotFound
		}
		return reviewTarget{}, fmt.Errorf("get aip: %w", err)
	}

	if err := scope.AuthorizeReviewer(actor, aip); err != nil {
		return reviewTarget{}, err
	}

	events, err := s.reviews.ListByAIP(ctx, aipID)
	if err != nil {
		return reviewTarget{}, fmt.Errorf("list review events: %w", err)
	}

	return reviewTarget{actor: actor, aip: aip, events: events}, nil
}

// requireDecisionRights checks the guards shared by RequestRevision and Publish:
// the AIP is under review and the actor owns the claim or is an admin.
func requireDecisionRights(t reviewTarget, stateMessage string) error {
	if t.aip.Status != domain.AIPStatusUnderReview {
		return domain.NewStateError(stateMessage)
	}
	if t.actor.IsAdmin() {
		return nil
	}
	owner := t.owner()
	if owner == nil || owner.ReviewerID != t.actor.UserID {
		return errUnauthorized
	}
	return nil
}

// reviewerName returns the display name recorded on review events.
func (s *Service) reviewerName(ctx context.Context, userID uuid.UUID) (string, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "Unknown", nil
		}
		return "", fmt.Errorf("get reviewer profile: %w", err)
	}
	return profile.DisplayName(), nil
}

// transition appends the event and, when next differs from the current
// status, moves the AIP in the same transaction.
func (s *Service) transition(ctx context.Context, t reviewTarget, event domain.ReviewEvent, next domain.AIPStatus) (domain.ReviewEvent, error) {
	var saved domain.ReviewEvent
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var appendErr error
		saved, appendErr = s.reviews.Append(txCtx, event)
		if appendErr != nil {
			return fmt.Errorf("append review event: %w", appendErr)
		}

		if next == t.aip.Status {
			return nil
		}
		updatedAt, updateErr := s.aips.UpdateStatus(txCtx, t.aip.ID, next)
		if updateErr != nil {
			return fmt.Errorf("update aip status: %w", updateErr)
		}
		t.aip.Status = next
		t.aip.StatusUpdatedAt = updatedAt
		return nil
	})
	if err != nil {
		return domain.ReviewEvent{}, err
	}
	return saved, nil
}

// audit appends an activity entry. Review entries are best-effort: a failure
// is logged and the transition stands.
func (s *Service) audit(ctx context.Context, t reviewTarget, action domain.ActivityAction, metadata map[string]any) {
	cityID := t.aip.CityID
	if cityID == nil {
		cityID = t.aip.ParentCityID
	}
	metadata["reviewer_role"] = t.actor.Role.Label()

	err := s.activity.Log(ctx, domain.ActivityRecord{
		ActorID:     t.actor.UserID,
		Action:      action,
		EntityTable: "aips",
		EntityID:    t.aip.ID,
		CityID:      cityID,
		BarangayID:  t.aip.BarangayID,
		Metadata:    metadata,
	})
	if err != nil {
		s.log.WarnContext(ctx, "activity log append failed",
			slog.String("aip_id", t.aip.ID.String()),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
