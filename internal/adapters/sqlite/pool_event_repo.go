package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/secondary"
)

// PoolEventRepository implements secondary.PoolEventRepository with SQLite.
// Read side only; events are written by ledger transactions.
type PoolEventRepository struct {
	db *sql.DB
}

// NewPoolEventRepository creates a new SQLite pool event repository.
func NewPoolEventRepository(db *sql.DB) *PoolEventRepository {
	return &PoolEventRepository{db: db}
}

// List retrieves audit events, most recent first.
func (r *PoolEventRepository) List(ctx context.Context, filters secondary.PoolEventFilters) ([]*models.PoolEvent, error) {
	query := "SELECT id, kind, location_code, bag_ref, operator, occurred_at FROM pool_events WHERE 1=1"
	args := []any{}

	if filters.BagRef != "" {
		query += " AND bag_ref = ?"
		args = append(args, filters.BagRef)
	}
	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, string(filters.Kind))
	}

	query += " ORDER BY occurred_at DESC, id"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pool events: %w", err)
	}
	defer rows.Close()

	var events []*models.PoolEvent
	for rows.Next() {
		ev := &models.PoolEvent{}
		var kind, occurredAt string
		if err := rows.Scan(&ev.ID, &kind, &ev.LocationCode, &ev.BagRef, &ev.Operator, &occurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan pool event: %w", err)
		}
		ev.Kind = models.PoolEventKind(kind)
		ev.OccurredAt, err = time.Parse(timeFormat, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("bad occurred_at for event %s: %w", ev.ID, err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
