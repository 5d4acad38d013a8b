package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/example/rcb/internal/adapters/cli"
	"github.com/example/rcb/internal/app"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
)

// mockDispatchService implements primary.DispatchService for adapter tests.
type mockDispatchService struct {
	nextBag    *models.Bag
	nextErr    error
	shipped    *models.Bag
	confirmErr error
}

func (m *mockDispatchService) NextForProduct(_ context.Context, _ string) (*models.Bag, error) {
	return m.nextBag, m.nextErr
}

func (m *mockDispatchService) ConfirmShip(_ context.Context, _ primary.ConfirmShipRequest) (*models.Bag, error) {
	return m.shipped, m.confirmErr
}

func TestDispatchAdapterNext(t *testing.T) {
	bag := testBag("RCB-2026-0001")
	var buf bytes.Buffer
	adapter := cli.NewDispatchAdapter(&mockDispatchService{nextBag: bag}, &buf)

	if err := adapter.Next(context.Background(), "Product Alpha"); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "RCB-2026-0001") {
		t.Errorf("output missing ref: %s", output)
	}
	if !strings.Contains(output, "WH-07") {
		t.Errorf("output missing pick slot: %s", output)
	}
}

func TestDispatchAdapterNextNoStock(t *testing.T) {
	service := &mockDispatchService{nextErr: fmt.Errorf("product: %w", app.ErrNoStock)}
	var buf bytes.Buffer
	adapter := cli.NewDispatchAdapter(service, &buf)

	// Empty stock is a normal answer for the shipping desk, not a failure.
	if err := adapter.Next(context.Background(), "Product Beta"); err != nil {
		t.Fatalf("expected no error for empty stock, got: %v", err)
	}
	if !strings.Contains(buf.String(), "No stock for Product Beta") {
		t.Errorf("expected no-stock message, got: %s", buf.String())
	}
}

func TestDispatchAdapterNextUnknownProduct(t *testing.T) {
	service := &mockDispatchService{nextErr: fmt.Errorf("product: %w", app.ErrUnknownProduct)}
	var buf bytes.Buffer
	adapter := cli.NewDispatchAdapter(service, &buf)

	if err := adapter.Next(context.Background(), "Product Gamma"); err == nil {
		t.Fatal("expected unknown product to propagate as error")
	}
}

func TestDispatchAdapterConfirm(t *testing.T) {
	bag := testBag("RCB-2026-0001")
	bag.Status = models.BagStatusShipped
	bag.Customer = "Acme Corp"
	var buf bytes.Buffer
	adapter := cli.NewDispatchAdapter(&mockDispatchService{shipped: bag}, &buf)

	if err := adapter.Confirm(context.Background(), bag.Ref, "Acme Corp", "jsmith"); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Shipped bag RCB-2026-0001 to Acme Corp") {
		t.Errorf("output missing confirmation: %s", output)
	}
	if !strings.Contains(output, "WH-07 is available again") {
		t.Errorf("output missing freed slot: %s", output)
	}
}
