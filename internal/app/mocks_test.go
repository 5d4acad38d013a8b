package app_test

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/example/rcb/internal/infra/metrics"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/secondary"
)

// mockLedger is a hand-rolled in-memory LedgerRepository. It hands out
// sequential refs and slots without a database, and records calls so tests
// can assert on what the service asked for.
type mockLedger struct {
	bags map[string]*models.Bag
	seq  int

	createErr error
	findErr   error

	createCalls []secondary.NewBag
	shipCalls   []string
}

func newMockLedger() *mockLedger {
	return &mockLedger{bags: map[string]*models.Bag{}}
}

func (m *mockLedger) CreateWithLocation(_ context.Context, bag secondary.NewBag) (*models.Bag, error) {
	m.createCalls = append(m.createCalls, bag)
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.seq++
	created := &models.Bag{
		Ref:          fmt.Sprintf("RCB-2026-%04d", m.seq),
		Product:      bag.Product,
		Quality:      bag.Quality,
		LocationCode: fmt.Sprintf("WH-%02d", m.seq),
		Status:       models.BagStatusInventory,
		Operator:     bag.Operator,
		CreatedAt:    time.Date(2026, 3, 10, 8, 0, m.seq, 0, time.UTC),
	}
	m.bags[created.Ref] = created
	return created, nil
}

func (m *mockLedger) GetByRef(_ context.Context, ref string) (*models.Bag, error) {
	bag, ok := m.bags[ref]
	if !ok {
		return nil, fmt.Errorf("bag %s: %w", ref, secondary.ErrNotFound)
	}
	return bag, nil
}

func (m *mockLedger) FindOldestInventory(_ context.Context, product string) (*models.Bag, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var oldest *models.Bag
	for _, bag := range m.bags {
		if bag.Product != product || bag.Status != models.BagStatusInventory {
			continue
		}
		if oldest == nil || bag.CreatedAt.Before(oldest.CreatedAt) ||
			(bag.CreatedAt.Equal(oldest.CreatedAt) && bag.Ref < oldest.Ref) {
			oldest = bag
		}
	}
	return oldest, nil
}

func (m *mockLedger) MarkShipped(_ context.Context, ref, customer, shippedBy string, now time.Time) (*models.Bag, error) {
	m.shipCalls = append(m.shipCalls, ref)
	bag, ok := m.bags[ref]
	if !ok {
		return nil, fmt.Errorf("bag %s: %w", ref, secondary.ErrNotFound)
	}
	if bag.Status != models.BagStatusInventory {
		return nil, fmt.Errorf("bag %s: %w", ref, secondary.ErrAlreadyShipped)
	}
	shippedAt := now.UTC()
	bag.Status = models.BagStatusShipped
	bag.Customer = customer
	bag.ShippedBy = shippedBy
	bag.ShippedAt = &shippedAt
	return bag, nil
}

func (m *mockLedger) List(_ context.Context, filters secondary.BagFilters) ([]*models.Bag, error) {
	var out []*models.Bag
	for _, bag := range m.bags {
		if filters.Product != "" && bag.Product != filters.Product {
			continue
		}
		if filters.Status != "" && bag.Status != filters.Status {
			continue
		}
		out = append(out, bag)
	}
	return out, nil
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

var testCatalog = []string{"Product Alpha", "Product Beta"}
