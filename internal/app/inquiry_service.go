package app

import (
	"context"
	"fmt"

	corepool "github.com/example/rcb/internal/core/pool"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/ports/secondary"
)

// InquiryServiceImpl implements the read-only InquiryService interface.
type InquiryServiceImpl struct {
	ledger    secondary.LedgerRepository
	locations secondary.LocationRepository
	events    secondary.PoolEventRepository
}

// NewInquiryService creates a new InquiryService with injected dependencies.
func NewInquiryService(
	ledger secondary.LedgerRepository,
	locations secondary.LocationRepository,
	events secondary.PoolEventRepository,
) *InquiryServiceImpl {
	return &InquiryServiceImpl{
		ledger:    ledger,
		locations: locations,
		events:    events,
	}
}

// Query returns bags matching the filters, oldest first.
func (s *InquiryServiceImpl) Query(ctx context.Context, q primary.BagQuery) ([]*models.Bag, error) {
	bags, err := s.ledger.List(ctx, secondary.BagFilters{
		Status:   q.Status,
		Product:  q.Product,
		Location: q.Location,
		From:     q.From,
		To:       q.To,
		Limit:    q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query bags: %w", err)
	}
	return bags, nil
}

// PoolStatus returns a consistent snapshot of the slot pool.
func (s *InquiryServiceImpl) PoolStatus(ctx context.Context) (*primary.PoolStatus, error) {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pool: %w", err)
	}

	available, occupied := corepool.Summarize(locations)
	return &primary.PoolStatus{
		Locations: locations,
		Available: available,
		Occupied:  occupied,
		Next:      corepool.NextAvailable(locations),
	}, nil
}

// Slot returns a single location by code.
func (s *InquiryServiceImpl) Slot(ctx context.Context, code string) (*models.Location, error) {
	return s.locations.GetByCode(ctx, code)
}

// PoolEvents returns the slot audit trail, most recent first.
func (s *InquiryServiceImpl) PoolEvents(ctx context.Context, q primary.PoolEventQuery) ([]*models.PoolEvent, error) {
	events, err := s.events.List(ctx, secondary.PoolEventFilters{
		BagRef: q.BagRef,
		Kind:   q.Kind,
		Limit:  q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pool events: %w", err)
	}
	return events, nil
}
