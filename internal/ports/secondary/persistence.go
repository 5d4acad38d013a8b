// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"time"

	"github.com/example/rcb/internal/models"
)

// NewBag carries the caller-supplied fields for a single production event.
// Reference, location, status, and creation time are assigned by the ledger.
type NewBag struct {
	Product  string
	Quality  models.QualityResults
	Operator string
}

// BagFilters contains filter options for querying the ledger. Zero values mean
// "no constraint". Results are always ordered by created_at then ref.
type BagFilters struct {
	Status   models.BagStatus
	Product  string
	Location string
	From     time.Time
	To       time.Time
	Limit    int
}

// LedgerRepository defines the secondary port for the bag ledger.
//
// CreateWithLocation and MarkShipped are each a single atomic unit of work:
// the slot allocation/release and the ledger write either both land or neither does.
type LedgerRepository interface {
	// CreateWithLocation assigns the next bag reference, allocates the
	// lowest-position available location, and inserts the bag, all in one
	// transaction. Returns ErrPoolExhausted when no location is free.
	CreateWithLocation(ctx context.Context, bag NewBag) (*models.Bag, error)

	// GetByRef retrieves a bag by its reference. Returns ErrNotFound.
	GetByRef(ctx context.Context, ref string) (*models.Bag, error)

	// FindOldestInventory returns the inventory bag with the smallest
	// created_at (ties broken by ref) for a product, or nil if none exists.
	FindOldestInventory(ctx context.Context, product string) (*models.Bag, error)

	// MarkShipped transitions a bag to shipped and releases its location in
	// one transaction. Returns ErrNotFound or ErrAlreadyShipped; the bag is
	// untouched on either.
	MarkShipped(ctx context.Context, ref, customer, shippedBy string, now time.Time) (*models.Bag, error)

	// List retrieves bags matching the given filters. Read-only.
	List(ctx context.Context, filters BagFilters) ([]*models.Bag, error)
}

// LocationRepository defines the read-side secondary port for the slot pool.
// Slot state mutations happen only inside LedgerRepository transactions.
type LocationRepository interface {
	// List returns every location ordered by position.
	List(ctx context.Context) ([]*models.Location, error)

	// GetByCode retrieves a single location. Returns ErrNotFound.
	GetByCode(ctx context.Context, code string) (*models.Location, error)

	// CountByStatus returns the number of available and occupied locations.
	CountByStatus(ctx context.Context) (available, occupied int, err error)
}

// PoolEventFilters contains filter options for the slot audit trail.
type PoolEventFilters struct {
	BagRef string
	Kind   models.PoolEventKind
	Limit  int
}

// PoolEventRepository defines the read-side secondary port for the slot audit
// trail. Events are appended by the ledger, never by callers.
type PoolEventRepository interface {
	// List retrieves events, most recent first.
	List(ctx context.Context, filters PoolEventFilters) ([]*models.PoolEvent, error)
}

// ProcessLogRepository defines the secondary port for reactor process logs.
type ProcessLogRepository interface {
	// Append persists a new reading and fills in its ID.
	Append(ctx context.Context, log *models.ProcessLog) error

	// List retrieves readings in [from, to), most recent first.
	// Zero times mean unbounded; limit 0 means no limit.
	List(ctx context.Context, from, to time.Time, limit int) ([]*models.ProcessLog, error)
}
