package primary

import (
	"context"

	"github.com/example/rcb/internal/models"
)

// DispatchService is the primary port for the shipping desk.
type DispatchService interface {
	// NextForProduct returns the bag that must ship next for a product:
	// the oldest inventory bag, strictly first-in-first-out.
	// Returns app.ErrNoStock when no inventory bag exists.
	NextForProduct(ctx context.Context, product string) (*models.Bag, error)

	// ConfirmShip moves a bag to shipped, records the customer and shipper,
	// and frees its slot. Rejected with ErrAlreadyShipped / ErrNotFound.
	ConfirmShip(ctx context.Context, req ConfirmShipRequest) (*models.Bag, error)
}

// ConfirmShipRequest describes one shipping confirmation.
type ConfirmShipRequest struct {
	Ref       string
	Customer  string
	ShippedBy string // already-authenticated identity; falls back to context
}
