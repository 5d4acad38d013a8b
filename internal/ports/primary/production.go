// Package primary defines the primary ports (driving adapters) for the application.
// CLI and HTTP surfaces depend on these interfaces, never on concrete services.
package primary

import (
	"context"
	"time"

	"github.com/example/rcb/internal/models"
)

// ProductionService is the primary port for the production-entry station.
type ProductionService interface {
	// RecordBag registers a newly produced bag: issues its reference,
	// allocates a warehouse slot, and appends it to the ledger.
	RecordBag(ctx context.Context, req RecordBagRequest) (*RecordBagResponse, error)

	// GetBag retrieves a single bag by reference.
	GetBag(ctx context.Context, ref string) (*models.Bag, error)

	// ListBags queries the ledger. Read-only.
	ListBags(ctx context.Context, q BagQuery) ([]*models.Bag, error)
}

// RecordBagRequest describes one production event.
type RecordBagRequest struct {
	Product  string
	Quality  models.QualityResults
	Operator string // already-authenticated identity; falls back to context
}

// RecordBagResponse is the hand-off data for the label printer:
// the issued reference and the slot the bag must be stored in.
type RecordBagResponse struct {
	Ref      string
	Location string
	Bag      *models.Bag
}

// BagQuery contains the read-only filter options exposed to callers.
type BagQuery struct {
	Status   models.BagStatus
	Product  string
	Location string
	From     time.Time
	To       time.Time
	Limit    int
}
