package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/secondary"
)

// LocationRepository implements secondary.LocationRepository with SQLite.
// It is read-only: slot state only changes inside ledger transactions, via
// the unexported helpers below.
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new SQLite location repository.
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// List returns every location ordered by position.
func (r *LocationRepository) List(ctx context.Context) ([]*models.Location, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT code, position, status FROM locations ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		loc := &models.Location{}
		var status string
		if err := rows.Scan(&loc.Code, &loc.Position, &status); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		loc.Status = models.LocationStatus(status)
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// GetByCode retrieves a single location.
func (r *LocationRepository) GetByCode(ctx context.Context, code string) (*models.Location, error) {
	loc := &models.Location{}
	var status string
	err := r.db.QueryRowContext(ctx,
		"SELECT code, position, status FROM locations WHERE code = ?", code,
	).Scan(&loc.Code, &loc.Position, &status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("location %s: %w", code, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	loc.Status = models.LocationStatus(status)
	return loc, nil
}

// CountByStatus returns the number of available and occupied locations.
func (r *LocationRepository) CountByStatus(ctx context.Context) (available, occupied int, err error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM locations GROUP BY status",
	)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return 0, 0, fmt.Errorf("failed to scan location count: %w", err)
		}
		switch models.LocationStatus(status) {
		case models.LocationOccupied:
			occupied = count
		default:
			available = count
		}
	}
	return available, occupied, rows.Err()
}

// allocateLocation flips the lowest-position available location to occupied
// within tx and returns its code. The selection and the flip are a single
// statement, so two concurrent producers can never be handed the same slot.
func allocateLocation(ctx context.Context, tx *sql.Tx) (string, error) {
	var code string
	err := tx.QueryRowContext(ctx, `
		UPDATE locations SET status = 'occupied'
		WHERE code = (
			SELECT code FROM locations WHERE status = 'available' ORDER BY position LIMIT 1
		)
		RETURNING code`,
	).Scan(&code)
	if err == sql.ErrNoRows {
		return "", secondary.ErrPoolExhausted
	}
	if err != nil {
		return "", fmt.Errorf("failed to allocate location: %w", err)
	}
	return code, nil
}

// releaseLocation flips an occupied location back to available within tx.
// The status predicate plus rows-affected check surfaces double releases as
// ErrInvalidRelease, which rolls the whole transaction back.
func releaseLocation(ctx context.Context, tx *sql.Tx, code string) error {
	result, err := tx.ExecContext(ctx,
		"UPDATE locations SET status = 'available' WHERE code = ? AND status = 'occupied'",
		code,
	)
	if err != nil {
		return fmt.Errorf("failed to release location: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to release location: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("location %s: %w", code, secondary.ErrInvalidRelease)
	}
	return nil
}

// recordPoolEvent appends an audit entry for a slot change within tx.
func recordPoolEvent(ctx context.Context, tx *sql.Tx, kind models.PoolEventKind, code, bagRef, operator string, at time.Time) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO pool_events (id, kind, location_code, bag_ref, operator, occurred_at) VALUES (?, ?, ?, ?, ?, ?)",
		uuid.NewString(), string(kind), code, bagRef, operator, at.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to record pool event: %w", err)
	}
	return nil
}
