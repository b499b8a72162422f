package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
	"github.com/heartmarshall/aip-review-backend/internal/service/scope"
	"github.com/heartmarshall/aip-review-backend/pkg/ctxutil"
)

// SubmissionList is a city's review queue with per-status counts.
type SubmissionList struct {
	Rows   []domain.SubmissionRow
	Counts domain.SubmissionCounts
}

// GetReviewState returns the AIP together with its current claim owner.
func (s *Service) GetReviewState(ctx context.Context, aipID uuid.UUID) (*domain.ReviewState, error) {
	t, err := s.load(ctx, aipID)
	if err != nil {
		return nil, err
	}
	state := domain.NewReviewState(*t.aip, t.events)
	return &state, nil
}

// ListSubmissions returns the non-draft barangay AIPs of a city, newest first.
// A row's reviewer name is shown only while that reviewer holds a live claim.
func (s *Service) ListSubmissions(ctx context.Context, cityID uuid.UUID) (*SubmissionList, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, errUnauthorized
	}
	if err := scope.AuthorizeCityQueue(actor, cityID); err != nil {
		return nil, err
	}

	rows, err := s.aips.ListForCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("list city submissions: %w", err)
	}

	list := &SubmissionList{Rows: make([]domain.SubmissionRow, 0, len(rows))}
	for _, row := range rows {
		row.ReviewerName = row.ClaimedBy()
		list.Rows = append(list.Rows, row)
		list.Counts.Add(row.AIP.Status)
	}
	return list, nil
}
