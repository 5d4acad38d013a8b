package app

import (
	"context"
	"fmt"
	"time"

	corebag "github.com/example/rcb/internal/core/bag"
	"github.com/example/rcb/internal/core/bagref"
	"github.com/example/rcb/internal/ctxutil"
	"github.com/example/rcb/internal/infra/metrics"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/ports/secondary"
)

// DispatchServiceImpl implements the DispatchService interface.
// It is the only component that moves a bag out of inventory.
type DispatchServiceImpl struct {
	ledger    secondary.LedgerRepository
	catalog   []string
	refPrefix string
	metrics   *metrics.Metrics
}

// NewDispatchService creates a new DispatchService with injected dependencies.
func NewDispatchService(ledger secondary.LedgerRepository, catalog []string, refPrefix string, m *metrics.Metrics) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		ledger:    ledger,
		catalog:   catalog,
		refPrefix: refPrefix,
		metrics:   m,
	}
}

// NextForProduct returns the bag that must ship next for a product.
// Strictly first-in-first-out: a newer bag is never substituted while an
// older one of the same product is still in stock.
func (s *DispatchServiceImpl) NextForProduct(ctx context.Context, product string) (*models.Bag, error) {
	if !corebag.InCatalog(product, s.catalog) {
		return nil, fmt.Errorf("product %q: %w", product, ErrUnknownProduct)
	}

	bag, err := s.ledger.FindOldestInventory(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to find dispatch candidate: %w", err)
	}
	if bag == nil {
		return nil, fmt.Errorf("product %q: %w", product, ErrNoStock)
	}
	return bag, nil
}

// ConfirmShip transitions a bag to shipped and frees its slot as one atomic
// step. Repeated confirmations are rejected with ErrAlreadyShipped and cause
// no second mutation.
func (s *DispatchServiceImpl) ConfirmShip(ctx context.Context, req primary.ConfirmShipRequest) (*models.Bag, error) {
	shippedBy := req.ShippedBy
	if shippedBy == "" {
		shippedBy = ctxutil.OperatorFromContext(ctx)
	}

	if _, _, ok := bagref.Parse(s.refPrefix, req.Ref); !ok {
		return nil, fmt.Errorf("malformed bag reference %q: %w", req.Ref, secondary.ErrNotFound)
	}

	current, err := s.ledger.GetByRef(ctx, req.Ref)
	if err != nil {
		return nil, err
	}

	guard := corebag.CanShip(corebag.ShipContext{
		Ref:       current.Ref,
		Status:    current.Status,
		Customer:  req.Customer,
		ShippedBy: shippedBy,
	})
	if !guard.Allowed {
		if current.Status != models.BagStatusInventory {
			return nil, fmt.Errorf("%s: %w", guard.Reason, secondary.ErrAlreadyShipped)
		}
		return nil, guard.Error()
	}

	// The repository re-checks the status inside the transaction; the guard
	// above only gives a friendly early answer.
	bag, err := s.ledger.MarkShipped(ctx, req.Ref, req.Customer, shippedBy, time.Now())
	if err != nil {
		return nil, err
	}

	s.metrics.BagsShipped.WithLabelValues(bag.Product).Inc()
	return bag, nil
}
