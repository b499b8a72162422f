// Package activity implements the append-only activity log using PostgreSQL.
package activity

import (
	"context"
	"encoding/json"
	"fmt"

	postgres "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Log appends an activity record.
func (r *Repo) Log(ctx context.Context, record domain.ActivityRecord) error {
	if record.Action == "" || record.EntityTable == "" {
		return fmt.Errorf("activity_log: action and entity_table are required")
	}

	metadata := record.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("activity_log marshal metadata: %w", err)
	}

	query := postgres.Builder().
		Insert("activity_log").
		Columns("actor_id", "action", "entity_table", "entity_id", "city_id", "barangay_id", "metadata").
		Values(record.ActorID, string(record.Action), record.EntityTable, record.EntityID,
			record.CityID, record.BarangayID, metadataJSON)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build activity insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity_log", record.EntityID)
	}
	return nil
}
