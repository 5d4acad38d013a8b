package primary

import (
	"context"

	"github.com/example/rcb/internal/models"
)

// InquiryService is the read-only primary port consumed by stock inquiry,
// the warehouse grid, and report export collaborators.
type InquiryService interface {
	// Query returns bags matching the filters, oldest first.
	Query(ctx context.Context, q BagQuery) ([]*models.Bag, error)

	// PoolStatus returns every location plus occupancy totals.
	PoolStatus(ctx context.Context) (*PoolStatus, error)

	// Slot returns a single location by code. Returns ErrNotFound.
	Slot(ctx context.Context, code string) (*models.Location, error)

	// PoolEvents returns the slot audit trail, most recent first.
	PoolEvents(ctx context.Context, q PoolEventQuery) ([]*models.PoolEvent, error)
}

// PoolStatus is a consistent snapshot of the slot pool.
type PoolStatus struct {
	Locations []*models.Location
	Available int
	Occupied  int

	// Next is the slot the next production event will be assigned, nil when
	// the pool is exhausted.
	Next *models.Location
}

// PoolEventQuery contains filter options for the slot audit trail.
type PoolEventQuery struct {
	BagRef string
	Kind   models.PoolEventKind
	Limit  int
}
