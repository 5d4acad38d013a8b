// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through db.GetSchemaSQL(), the single authoritative
// schema, so test schemas can never drift from production. Do not hardcode
// CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/rcb/internal/db"
)

const testTimeFormat = "2006-01-02 15:04:05.000000000"

// setupTestDB creates an in-memory database with the authoritative schema,
// opened through db.Open so the production pragmas (foreign keys on) apply.
// A single connection is enforced so the shared in-memory database is seen by
// every statement.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPool seeds n warehouse slots via the production seeding path.
func seedPool(t *testing.T, database *sql.DB, n int) {
	t.Helper()
	if err := db.SeedLocations(database, n); err != nil {
		t.Fatalf("failed to seed pool: %v", err)
	}
}

// seedBag inserts a ledger row directly, bypassing allocation. Used to build
// specific historical states (e.g. equal timestamps for tie-break tests).
func seedBag(t *testing.T, database *sql.DB, ref, product, location string, createdAt time.Time) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO bags (ref, product, location_code, status, created_at) VALUES (?, ?, ?, 'inventory', ?)",
		ref, product, location, createdAt.UTC().Format(testTimeFormat),
	)
	if err != nil {
		t.Fatalf("failed to seed bag %s: %v", ref, err)
	}
	if location != "" {
		if _, err := database.Exec("UPDATE locations SET status = 'occupied' WHERE code = ?", location); err != nil {
			t.Fatalf("failed to occupy location %s: %v", location, err)
		}
	}
}

// poolCounts reads the raw slot counters.
func poolCounts(t *testing.T, database *sql.DB) (available, occupied int) {
	t.Helper()
	row := database.QueryRow("SELECT COUNT(*) FILTER (WHERE status = 'available'), COUNT(*) FILTER (WHERE status = 'occupied') FROM locations")
	if err := row.Scan(&available, &occupied); err != nil {
		t.Fatalf("failed to count pool: %v", err)
	}
	return available, occupied
}

// assertBijection fails unless the set of occupied slots equals the set of
// slots referenced by inventory bags, one-to-one.
func assertBijection(t *testing.T, database *sql.DB) {
	t.Helper()

	var mismatch int
	err := database.QueryRow(`
		SELECT COUNT(*) FROM locations l
		WHERE (l.status = 'occupied') != (
			(SELECT COUNT(*) FROM bags b WHERE b.location_code = l.code AND b.status = 'inventory') = 1
		)`).Scan(&mismatch)
	if err != nil {
		t.Fatalf("bijection query failed: %v", err)
	}
	if mismatch != 0 {
		t.Errorf("occupancy bijection violated for %d locations", mismatch)
	}

	var doubled int
	err = database.QueryRow(`
		SELECT COUNT(*) FROM (
			SELECT location_code FROM bags WHERE status = 'inventory'
			GROUP BY location_code HAVING COUNT(*) > 1
		)`).Scan(&doubled)
	if err != nil {
		t.Fatalf("bijection query failed: %v", err)
	}
	if doubled != 0 {
		t.Errorf("%d locations referenced by more than one inventory bag", doubled)
	}
}

// setupFileTestDB creates a file-backed database for tests that exercise
// concurrent producers through the real Open path.
func setupFileTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := fmt.Sprintf("%s/rcb-test.db", t.TempDir())
	testDB, err := db.Open(path)
	if err != nil {
		t.Fatalf("failed to open file test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}
