// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/example/rcb/internal/core/bagref"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/secondary"
)

// timeFormat is the stored timestamp layout. Fixed-width and UTC, so
// lexicographic order on the column equals chronological order - the FIFO
// sort key must never depend on string quirks.
const timeFormat = "2006-01-02 15:04:05.000000000"

// maxRefRetries bounds the in-place retry when a generated reference collides
// with an existing row. The primary key is the hard uniqueness backstop.
const maxRefRetries = 3

const bagColumns = `ref, product, particle_size, pellet_hardness, moisture, toluene,
	ash_content, weight_lbs, location_code, status, operator, created_at,
	customer, shipped_at, shipped_by`

// LedgerRepository implements secondary.LedgerRepository with SQLite.
type LedgerRepository struct {
	db        *sql.DB
	refPrefix string
}

// NewLedgerRepository creates a new SQLite ledger repository. refPrefix is the
// plant's reference prefix, e.g. "RCB".
func NewLedgerRepository(db *sql.DB, refPrefix string) *LedgerRepository {
	return &LedgerRepository{db: db, refPrefix: refPrefix}
}

// CreateWithLocation assigns the next reference, allocates the lowest-position
// available location, and inserts the bag, all in one transaction. A unique
// violation on the reference rolls everything back (releasing the slot with
// the rollback) and retries a bounded number of times.
func (r *LedgerRepository) CreateWithLocation(ctx context.Context, bag secondary.NewBag) (*models.Bag, error) {
	var lastErr error
	for attempt := 0; attempt < maxRefRetries; attempt++ {
		created, err := r.createOnce(ctx, bag)
		if err == nil {
			return created, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", secondary.ErrRefConflict, maxRefRetries, lastErr)
}

func (r *LedgerRepository) createOnce(ctx context.Context, bag secondary.NewBag) (*models.Bag, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	// Bump the durable per-year sequence. Deriving the reference from a row
	// count would race and could repeat a reference after deletions.
	var seq int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO bag_sequences (year, counter) VALUES (?, 1)
		ON CONFLICT(year) DO UPDATE SET counter = counter + 1
		RETURNING counter`,
		now.Year(),
	).Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("failed to bump bag sequence: %w", err)
	}
	ref := bagref.Format(r.refPrefix, now.Year(), seq)

	code, err := allocateLocation(ctx, tx)
	if err != nil {
		return nil, err
	}

	q := bag.Quality
	_, err = tx.ExecContext(ctx, `
		INSERT INTO bags (ref, product, particle_size, pellet_hardness, moisture,
			toluene, ash_content, weight_lbs, location_code, status, operator, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'inventory', ?, ?)`,
		ref, bag.Product, q.ParticleSize, q.PelletHardness, q.Moisture,
		q.Toluene, q.AshContent, q.WeightLbs, code, bag.Operator, now.Format(timeFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bag: %w", err)
	}

	if err := recordPoolEvent(ctx, tx, models.PoolEventAllocate, code, ref, bag.Operator, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &models.Bag{
		Ref:          ref,
		Product:      bag.Product,
		Quality:      bag.Quality,
		LocationCode: code,
		Status:       models.BagStatusInventory,
		Operator:     bag.Operator,
		CreatedAt:    now,
	}, nil
}

// GetByRef retrieves a bag by its reference.
func (r *LedgerRepository) GetByRef(ctx context.Context, ref string) (*models.Bag, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bagColumns+" FROM bags WHERE ref = ?", ref,
	)
	bag, err := scanBag(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bag %s: %w", ref, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bag: %w", err)
	}
	return bag, nil
}

// FindOldestInventory returns the dispatch candidate for a product: the
// inventory bag with the smallest created_at, ties broken by ref. Returns
// nil (no error) when the product has no stock.
func (r *LedgerRepository) FindOldestInventory(ctx context.Context, product string) (*models.Bag, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bagColumns+` FROM bags
		WHERE product = ? AND status = 'inventory'
		ORDER BY created_at, ref LIMIT 1`,
		product,
	)
	bag, err := scanBag(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find oldest inventory bag: %w", err)
	}
	return bag, nil
}

// MarkShipped flips a bag to shipped and releases its slot in one transaction.
// Either both effects land or neither does.
func (r *LedgerRepository) MarkShipped(ctx context.Context, ref, customer, shippedBy string, now time.Time) (*models.Bag, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status string
	var locationCode sql.NullString
	err = tx.QueryRowContext(ctx,
		"SELECT status, location_code FROM bags WHERE ref = ?", ref,
	).Scan(&status, &locationCode)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bag %s: %w", ref, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bag for shipping: %w", err)
	}
	if models.BagStatus(status) != models.BagStatusInventory {
		return nil, fmt.Errorf("bag %s: %w", ref, secondary.ErrAlreadyShipped)
	}
	if !locationCode.Valid {
		return nil, fmt.Errorf("bag %s has no location: %w", ref, secondary.ErrInvalidRelease)
	}

	shippedAt := now.UTC().Format(timeFormat)
	result, err := tx.ExecContext(ctx, `
		UPDATE bags SET status = 'shipped', customer = ?, shipped_at = ?, shipped_by = ?
		WHERE ref = ? AND status = 'inventory'`,
		customer, shippedAt, shippedBy, ref,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mark bag shipped: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to mark bag shipped: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("bag %s: %w", ref, secondary.ErrAlreadyShipped)
	}

	if err := releaseLocation(ctx, tx, locationCode.String); err != nil {
		return nil, err
	}
	if err := recordPoolEvent(ctx, tx, models.PoolEventRelease, locationCode.String, ref, shippedBy, now); err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx,
		"SELECT "+bagColumns+" FROM bags WHERE ref = ?", ref,
	)
	bag, err := scanBag(row)
	if err != nil {
		return nil, fmt.Errorf("failed to reload shipped bag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return bag, nil
}

// List retrieves bags matching the given filters, oldest first.
func (r *LedgerRepository) List(ctx context.Context, filters secondary.BagFilters) ([]*models.Bag, error) {
	query := "SELECT " + bagColumns + " FROM bags WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filters.Status))
	}
	if filters.Product != "" {
		query += " AND product = ?"
		args = append(args, filters.Product)
	}
	if filters.Location != "" {
		query += " AND location_code = ?"
		args = append(args, filters.Location)
	}
	if !filters.From.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, filters.From.UTC().Format(timeFormat))
	}
	if !filters.To.IsZero() {
		query += " AND created_at < ?"
		args = append(args, filters.To.UTC().Format(timeFormat))
	}

	query += " ORDER BY created_at, ref"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bags: %w", err)
	}
	defer rows.Close()

	var bags []*models.Bag
	for rows.Next() {
		bag, err := scanBag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bag: %w", err)
		}
		bags = append(bags, bag)
	}
	return bags, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBag(row scanner) (*models.Bag, error) {
	var (
		bag          models.Bag
		locationCode sql.NullString
		status       string
		createdAt    string
		customer     sql.NullString
		shippedAt    sql.NullString
		shippedBy    sql.NullString
	)

	err := row.Scan(
		&bag.Ref, &bag.Product,
		&bag.Quality.ParticleSize, &bag.Quality.PelletHardness, &bag.Quality.Moisture,
		&bag.Quality.Toluene, &bag.Quality.AshContent, &bag.Quality.WeightLbs,
		&locationCode, &status, &bag.Operator, &createdAt,
		&customer, &shippedAt, &shippedBy,
	)
	if err != nil {
		return nil, err
	}

	bag.LocationCode = locationCode.String
	bag.Status = models.BagStatus(status)
	bag.Customer = customer.String
	bag.ShippedBy = shippedBy.String

	bag.CreatedAt, err = time.Parse(timeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad created_at for bag %s: %w", bag.Ref, err)
	}
	if shippedAt.Valid {
		t, err := time.Parse(timeFormat, shippedAt.String)
		if err != nil {
			return nil, fmt.Errorf("bad shipped_at for bag %s: %w", bag.Ref, err)
		}
		bag.ShippedAt = &t
	}

	return &bag, nil
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}
