package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete modern schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use it
// via GetSchemaSQL(); if repository code references a column that is missing
// here, tests fail immediately with "no such column" instead of drifting.
//
// When adding columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Warehouse slot pool. Fixed size, seeded once at init, never resized at
-- runtime. position is the deterministic allocation order.
CREATE TABLE IF NOT EXISTS locations (
	code TEXT PRIMARY KEY,
	position INTEGER NOT NULL UNIQUE,
	status TEXT NOT NULL CHECK(status IN ('available', 'occupied')) DEFAULT 'available'
);

-- Bag ledger. Append-only except for the single inventory -> shipped flip.
CREATE TABLE IF NOT EXISTS bags (
	ref TEXT PRIMARY KEY,
	product TEXT NOT NULL,
	particle_size REAL NOT NULL DEFAULT 0,
	pellet_hardness REAL NOT NULL DEFAULT 0,
	moisture REAL NOT NULL DEFAULT 0,
	toluene REAL NOT NULL DEFAULT 0,
	ash_content REAL NOT NULL DEFAULT 0,
	weight_lbs REAL NOT NULL DEFAULT 0,
	location_code TEXT REFERENCES locations(code),
	status TEXT NOT NULL CHECK(status IN ('inventory', 'shipped')) DEFAULT 'inventory',
	operator TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	customer TEXT,
	shipped_at TEXT,
	shipped_by TEXT
);

CREATE INDEX IF NOT EXISTS idx_bags_dispatch ON bags(product, status, created_at, ref);
CREATE INDEX IF NOT EXISTS idx_bags_location ON bags(location_code) WHERE status = 'inventory';

-- Durable per-year reference counter. Bumped inside the creating transaction;
-- never derived from a row count.
CREATE TABLE IF NOT EXISTS bag_sequences (
	year INTEGER PRIMARY KEY,
	counter INTEGER NOT NULL DEFAULT 0
);

-- Slot audit trail, written in the same transaction as the slot change.
CREATE TABLE IF NOT EXISTS pool_events (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL CHECK(kind IN ('allocate', 'release')),
	location_code TEXT NOT NULL,
	bag_ref TEXT NOT NULL,
	operator TEXT NOT NULL DEFAULT '',
	occurred_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pool_events_bag ON pool_events(bag_ref);

-- Reactor shift readings.
CREATE TABLE IF NOT EXISTS process_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	logged_at TEXT NOT NULL,
	operator TEXT NOT NULL DEFAULT '',
	toluene_value REAL NOT NULL DEFAULT 0,
	feed_rate REAL NOT NULL DEFAULT 0,
	reactor_1_temp REAL NOT NULL DEFAULT 0,
	reactor_2_temp REAL NOT NULL DEFAULT 0,
	reactor_1_hz REAL NOT NULL DEFAULT 0,
	reactor_2_hz REAL NOT NULL DEFAULT 0
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema brings the database to the current schema version. Fresh
// databases get SchemaSQL directly with all migrations marked applied;
// databases from older deployments are upgraded through the migration chain.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	if tableCount == 0 {
		var legacyCount int
		err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='bags'").Scan(&legacyCount)
		if err != nil {
			return fmt.Errorf("failed to inspect schema: %w", err)
		}

		if legacyCount > 0 {
			// Pre-versioning database - upgrade through the migration chain.
			return RunMigrations(database)
		}

		// Completely fresh install - create the modern schema directly and
		// mark all migrations as applied.
		if _, err := database.Exec(SchemaSQL); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		if err := createVersionTable(database); err != nil {
			return err
		}
		for _, m := range migrations {
			if err := markApplied(database, m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// Versioned database - apply whatever is pending.
	return RunMigrations(database)
}
