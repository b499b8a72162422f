// Package aip implements the AIP repository using PostgreSQL.
package aip

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// Repo provides AIP persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new AIP repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var aipColumns = []string{
	"a.id", "a.barangay_id", "a.city_id", "a.fiscal_year", "a.title",
	"a.status::text", "a.status_updated_at", "a.created_at",
	"b.city_id", "b.name",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the AIP with its barangay's parent city resolved.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AIP, error) {
	query := postgres.Builder().
		Select(aipColumns...).
		From("aips a").
		LeftJoin("barangays b ON b.id = a.barangay_id").
		Where(squirrel.Eq{"a.id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aip query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...)
	aip, err := scanAIP(row)
	if err != nil {
		return nil, postgres.MapError(err, "aip", id)
	}
	return aip, nil
}

// ListForCity returns the non-draft barangay AIPs of a city, newest first,
// each with the newest review event's reviewer name and action.
func (r *Repo) ListForCity(ctx context.Context, cityID uuid.UUID) ([]domain.SubmissionRow, error) {
	query := postgres.Builder().
		Select(append(aipColumns, "lr.reviewer_name", "lr.action::text")...).
		From("aips a").
		Join("barangays b ON b.id = a.barangay_id").
		LeftJoin(`LATERAL (
			SELECT reviewer_name, action FROM aip_reviews
			WHERE aip_id = a.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) lr ON true`).
		Where(squirrel.Eq{"b.city_id": cityID}).
		Where(squirrel.NotEq{"a.status": string(domain.AIPStatusDraft)}).
		OrderBy("a.created_at DESC", "a.id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build submissions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions for city %s: %w", cityID, err)
	}
	defer rows.Close()

	var result []domain.SubmissionRow
	for rows.Next() {
		var (
			sub          domain.SubmissionRow
			status       string
			reviewerName *string
			action       *string
		)
		if err := rows.Scan(
			&sub.AIP.ID, &sub.AIP.BarangayID, &sub.AIP.CityID, &sub.AIP.FiscalYear, &sub.AIP.Title,
			&status, &sub.AIP.StatusUpdatedAt, &sub.AIP.CreatedAt,
			&sub.AIP.ParentCityID, &sub.AIP.BarangayName,
			&reviewerName, &action,
		); err != nil {
			return nil, fmt.Errorf("scan submission row: %w", err)
		}
		sub.AIP.Status = domain.AIPStatus(status)
		sub.ReviewerName = reviewerName
		if action != nil {
			a := domain.ReviewAction(*action)
			sub.LatestAction = &a
		}
		result = append(result, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateStatus sets the AIP status and stamps status_updated_at.
// It returns the new timestamp.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AIPStatus) (time.Time, error) {
	query := postgres.Builder().
		Update("aips").
		Set("status", string(status)).
		Set("status_updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING status_updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("build aip status update: %w", err)
	}

	var updatedAt time.Time
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&updatedAt); err != nil {
		return time.Time{}, postgres.MapError(err, "aip", id)
	}
	return updatedAt, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanAIP(row pgx.Row) (*domain.AIP, error) {
	var (
		aip    domain.AIP
		status string
	)
	if err := row.Scan(
		&aip.ID, &aip.BarangayID, &aip.CityID, &aip.FiscalYear, &aip.Title,
		&status, &aip.StatusUpdatedAt, &aip.CreatedAt,
		&aip.ParentCityID, &aip.BarangayName,
	); err != nil {
		return nil, err
	}
	aip.Status = domain.AIPStatus(status)
	return &aip, nil
}
