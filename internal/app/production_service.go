// Package app contains application services implementing the primary ports.
// Services orchestrate guards and repositories; business rules stay in core.
package app

import (
	"context"
	"fmt"

	corebag "github.com/example/rcb/internal/core/bag"
	"github.com/example/rcb/internal/core/bagref"
	"github.com/example/rcb/internal/ctxutil"
	"github.com/example/rcb/internal/infra/metrics"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/ports/secondary"
)

// ProductionServiceImpl implements the ProductionService interface.
type ProductionServiceImpl struct {
	ledger    secondary.LedgerRepository
	catalog   []string
	refPrefix string
	metrics   *metrics.Metrics
}

// NewProductionService creates a new ProductionService with injected dependencies.
func NewProductionService(ledger secondary.LedgerRepository, catalog []string, refPrefix string, m *metrics.Metrics) *ProductionServiceImpl {
	return &ProductionServiceImpl{
		ledger:    ledger,
		catalog:   catalog,
		refPrefix: refPrefix,
		metrics:   m,
	}
}

// RecordBag registers a newly produced bag. The reference issue, slot
// allocation, and ledger append happen as one unit of work in the repository;
// a pool-exhausted outcome surfaces untransformed.
func (s *ProductionServiceImpl) RecordBag(ctx context.Context, req primary.RecordBagRequest) (*primary.RecordBagResponse, error) {
	operator := req.Operator
	if operator == "" {
		operator = ctxutil.OperatorFromContext(ctx)
	}

	guard := corebag.CanRecord(corebag.RecordContext{
		Product: req.Product,
		Catalog: s.catalog,
		Quality: req.Quality,
	})
	if !guard.Allowed {
		if !corebag.InCatalog(req.Product, s.catalog) {
			return nil, fmt.Errorf("%s: %w", guard.Reason, ErrUnknownProduct)
		}
		return nil, guard.Error()
	}

	bag, err := s.ledger.CreateWithLocation(ctx, secondary.NewBag{
		Product:  req.Product,
		Quality:  req.Quality,
		Operator: operator,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.BagsProduced.WithLabelValues(bag.Product).Inc()

	return &primary.RecordBagResponse{
		Ref:      bag.Ref,
		Location: bag.LocationCode,
		Bag:      bag,
	}, nil
}

// GetBag retrieves a single bag by reference. A reference that does not even
// have the plant's shape is rejected without a ledger round trip.
func (s *ProductionServiceImpl) GetBag(ctx context.Context, ref string) (*models.Bag, error) {
	if _, _, ok := bagref.Parse(s.refPrefix, ref); !ok {
		return nil, fmt.Errorf("malformed bag reference %q: %w", ref, secondary.ErrNotFound)
	}
	return s.ledger.GetByRef(ctx, ref)
}

// ListBags queries the ledger.
func (s *ProductionServiceImpl) ListBags(ctx context.Context, q primary.BagQuery) ([]*models.Bag, error) {
	bags, err := s.ledger.List(ctx, secondary.BagFilters{
		Status:   q.Status,
		Product:  q.Product,
		Location: q.Location,
		From:     q.From,
		To:       q.To,
		Limit:    q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bags: %w", err)
	}
	return bags, nil
}
