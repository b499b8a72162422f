package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEvent is one immutable row of the AIP review log.
type ReviewEvent struct {
	ID           uuid.UUID
	AIPID        uuid.UUID
	ReviewerID   uuid.UUID
	ReviewerName string
	Action       ReviewAction
	Note         *string
	CreatedAt    time.Time
}

// ReviewState is the ownership view of an AIP returned by the review workflow.
type ReviewState struct {
	AIP         AIP
	Owner       *ReviewOwner
	LatestEvent *ReviewEvent
}

// ReviewOwner identifies the reviewer currently holding the claim.
type ReviewOwner struct {
	ReviewerID   uuid.UUID
	ReviewerName string
	ClaimedAt    time.Time
}

// CurrentOwner derives the claim owner from the review log.
// events must be ordered newest first. The owner is the reviewer of the newest
// event when that event is a claim and the AIP is still under review; any later
// decision supersedes the claim.
func CurrentOwner(status AIPStatus, events []ReviewEvent) *ReviewOwner {
	if status != AIPStatusUnderReview || len(events) == 0 {
		return nil
	}
	latest := events[0]
	if latest.Action != ReviewActionClaim {
		return nil
	}
	return &ReviewOwner{
		ReviewerID:   latest.ReviewerID,
		ReviewerName: latest.ReviewerName,
		ClaimedAt:    latest.CreatedAt,
	}
}

// NewReviewState builds the ownership view from an AIP and its newest-first events.
func NewReviewState(aip AIP, events []ReviewEvent) ReviewState {
	state := ReviewState{
		AIP:   aip,
		Owner: CurrentOwner(aip.Status, events),
	}
	if len(events) > 0 {
		latest := events[0]
		state.LatestEvent = &latest
	}
	return state
}

// SubmissionRow is one AIP in a reviewer's submission queue.
// ReviewerName and LatestAction come from the newest review event, if any.
type SubmissionRow struct {
	AIP          AIP
	ReviewerName *string
	LatestAction *ReviewAction
}

// ClaimedBy returns the reviewer holding a live claim on the row, or nil.
func (r SubmissionRow) ClaimedBy() *string {
	if r.AIP.Status != AIPStatusUnderReview || r.LatestAction == nil || *r.LatestAction != ReviewActionClaim {
		return nil
	}
	return r.ReviewerName
}
