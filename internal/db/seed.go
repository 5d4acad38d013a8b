package db

import (
	"database/sql"
	"fmt"
)

// SeedLocations populates the slot pool with n locations coded WH-01..WH-NN.
// Codes are zero-padded to the pool width so lexicographic and positional
// order agree. Idempotent: existing rows are left untouched, so re-running
// init never resets occupancy.
func SeedLocations(database *sql.DB, n int) error {
	if n <= 0 {
		return fmt.Errorf("pool size must be positive, got %d", n)
	}

	width := len(fmt.Sprintf("%d", n))
	if width < 2 {
		width = 2
	}

	for i := 1; i <= n; i++ {
		code := fmt.Sprintf("WH-%0*d", width, i)
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO locations (code, position, status) VALUES (?, ?, 'available')",
			code, i,
		); err != nil {
			return fmt.Errorf("seed locations: %w", err)
		}
	}

	return nil
}
