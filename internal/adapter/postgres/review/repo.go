// Package review implements the append-only AIP review log using PostgreSQL.
package review

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// Repo provides review event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append inserts a review event and returns it with id and created_at filled.
func (r *Repo) Append(ctx context.Context, event domain.ReviewEvent) (domain.ReviewEvent, error) {
	if !event.Action.IsValid() {
		return domain.ReviewEvent{}, fmt.Errorf("append review event: invalid action %q", event.Action)
	}

	query := postgres.Builder().
		Insert("aip_reviews").
		Columns("aip_id", "reviewer_id", "reviewer_name", "action", "note").
		Values(event.AIPID, event.ReviewerID, event.ReviewerName, string(event.Action), event.Note).
		Suffix("RETURNING id, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.ReviewEvent{}, fmt.Errorf("build review insert: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return domain.ReviewEvent{}, postgres.MapError(err, "aip_review", event.AIPID)
	}

	return event, nil
}

// ListByAIP returns every review event of an AIP, newest first.
func (r *Repo) ListByAIP(ctx context.Context, aipID uuid.UUID) ([]domain.ReviewEvent, error) {
	query := postgres.Builder().
		Select("id", "aip_id", "reviewer_id", "reviewer_name", "action::text", "note", "created_at").
		From("aip_reviews").
		Where(squirrel.Eq{"aip_id": aipID}).
		OrderBy("created_at DESC", "id DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build review query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews for aip %s: %w", aipID, err)
	}
	defer rows.Close()

	var events []domain.ReviewEvent
	for rows.Next() {
		var (
			e      domain.ReviewEvent
			action string
		)
		if err := rows.Scan(&e.ID, &e.AIPID, &e.ReviewerID, &e.ReviewerName, &action, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		e.Action = domain.ReviewAction(action)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review events: %w", err)
	}

	return events, nil
}
