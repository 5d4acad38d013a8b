package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/rcb/internal/models"
)

// ProcessLogRepository implements secondary.ProcessLogRepository with SQLite.
type ProcessLogRepository struct {
	db *sql.DB
}

// NewProcessLogRepository creates a new SQLite process log repository.
func NewProcessLogRepository(db *sql.DB) *ProcessLogRepository {
	return &ProcessLogRepository{db: db}
}

// Append persists a new reactor reading and fills in its ID.
func (r *ProcessLogRepository) Append(ctx context.Context, log *models.ProcessLog) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO process_logs (logged_at, operator, toluene_value, feed_rate,
			reactor_1_temp, reactor_2_temp, reactor_1_hz, reactor_2_hz)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		log.LoggedAt.UTC().Format(timeFormat), log.Operator,
		log.TolueneValue, log.FeedRate,
		log.Reactor1Temp, log.Reactor2Temp, log.Reactor1Hz, log.Reactor2Hz,
	)
	if err != nil {
		return fmt.Errorf("failed to append process log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read process log id: %w", err)
	}
	log.ID = id
	return nil
}

// List retrieves readings in [from, to), most recent first.
func (r *ProcessLogRepository) List(ctx context.Context, from, to time.Time, limit int) ([]*models.ProcessLog, error) {
	query := `SELECT id, logged_at, operator, toluene_value, feed_rate,
		reactor_1_temp, reactor_2_temp, reactor_1_hz, reactor_2_hz
		FROM process_logs WHERE 1=1`
	args := []any{}

	if !from.IsZero() {
		query += " AND logged_at >= ?"
		args = append(args, from.UTC().Format(timeFormat))
	}
	if !to.IsZero() {
		query += " AND logged_at < ?"
		args = append(args, to.UTC().Format(timeFormat))
	}

	query += " ORDER BY logged_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list process logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.ProcessLog
	for rows.Next() {
		entry := &models.ProcessLog{}
		var loggedAt string
		if err := rows.Scan(
			&entry.ID, &loggedAt, &entry.Operator, &entry.TolueneValue, &entry.FeedRate,
			&entry.Reactor1Temp, &entry.Reactor2Temp, &entry.Reactor1Hz, &entry.Reactor2Hz,
		); err != nil {
			return nil, fmt.Errorf("failed to scan process log: %w", err)
		}
		entry.LoggedAt, err = time.Parse(timeFormat, loggedAt)
		if err != nil {
			return nil, fmt.Errorf("bad logged_at for process log %d: %w", entry.ID, err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
