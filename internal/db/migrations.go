package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a single schema upgrade step.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order. The chain mirrors the
// plant's deployment history: the ledger predates the slot pool, which was
// bolted on when the warehouse outgrew the single default bay.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_bags_and_sequences",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_ash_content_to_bags",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_location_pool_and_events",
		Up:      migrationV3,
	},
	{
		Version: 4,
		Name:    "add_process_logs",
		Up:      migrationV4,
	},
}

// RunMigrations applies every pending migration in version order.
func RunMigrations(database *sql.DB) error {
	if err := createVersionTable(database); err != nil {
		return err
	}

	for _, m := range migrations {
		var applied int
		err := database.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", m.Version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.Version, err)
		}
		if applied > 0 {
			continue
		}

		if err := m.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if err := markApplied(database, m.Version); err != nil {
			return err
		}
	}

	return nil
}

func createVersionTable(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TEXT DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}
	return nil
}

func markApplied(database *sql.DB, version int) error {
	if _, err := database.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", version); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", version, err)
	}
	return nil
}

func migrationV1(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS bags (
			ref TEXT PRIMARY KEY,
			product TEXT NOT NULL,
			particle_size REAL NOT NULL DEFAULT 0,
			pellet_hardness REAL NOT NULL DEFAULT 0,
			moisture REAL NOT NULL DEFAULT 0,
			toluene REAL NOT NULL DEFAULT 0,
			weight_lbs REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL CHECK(status IN ('inventory', 'shipped')) DEFAULT 'inventory',
			operator TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			customer TEXT,
			shipped_at TEXT,
			shipped_by TEXT
		);

		CREATE TABLE IF NOT EXISTS bag_sequences (
			year INTEGER PRIMARY KEY,
			counter INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

func migrationV2(database *sql.DB) error {
	if columnExists(database, "bags", "ash_content") {
		return nil
	}
	_, err := database.Exec("ALTER TABLE bags ADD COLUMN ash_content REAL NOT NULL DEFAULT 0")
	return err
}

func migrationV3(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS locations (
			code TEXT PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE,
			status TEXT NOT NULL CHECK(status IN ('available', 'occupied')) DEFAULT 'available'
		);

		CREATE TABLE IF NOT EXISTS pool_events (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL CHECK(kind IN ('allocate', 'release')),
			location_code TEXT NOT NULL,
			bag_ref TEXT NOT NULL,
			operator TEXT NOT NULL DEFAULT '',
			occurred_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pool_events_bag ON pool_events(bag_ref);
	`)
	if err != nil {
		return err
	}

	if !columnExists(database, "bags", "location_code") {
		if _, err := database.Exec("ALTER TABLE bags ADD COLUMN location_code TEXT REFERENCES locations(code)"); err != nil {
			return err
		}

		// Pre-pool bags all lived in the original single bay. The bay row
		// must exist before rows reference it (foreign keys are on), and it
		// comes up occupied whenever in-stock bags are backfilled into it;
		// shipped rows keep NULL.
		var inStock int
		if err := database.QueryRow("SELECT COUNT(*) FROM bags WHERE status = 'inventory'").Scan(&inStock); err != nil {
			return err
		}
		bayStatus := "available"
		if inStock > 0 {
			bayStatus = "occupied"
		}
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO locations (code, position, status) VALUES ('WH-01', 1, ?)", bayStatus,
		); err != nil {
			return err
		}
		if _, err := database.Exec("UPDATE bags SET location_code = 'WH-01' WHERE status = 'inventory'"); err != nil {
			return err
		}
	}

	_, err = database.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bags_dispatch ON bags(product, status, created_at, ref);
		CREATE INDEX IF NOT EXISTS idx_bags_location ON bags(location_code) WHERE status = 'inventory';
	`)
	return err
}

func migrationV4(database *sql.DB) error {
	_, err := database.Exec(`
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
		)
	`)
	return err
}

func columnExists(database *sql.DB, table, column string) bool {
	rows, err := database.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false
		}
		if name == column {
			return true
		}
	}
	return false
}
