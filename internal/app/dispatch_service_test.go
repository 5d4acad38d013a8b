package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/rcb/internal/app"
	"github.com/example/rcb/internal/ctxutil"
	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/ports/secondary"
)

func seedInventory(t *testing.T, ledger *mockLedger, products ...string) []*models.Bag {
	t.Helper()
	var bags []*models.Bag
	for _, product := range products {
		bag, err := ledger.CreateWithLocation(context.Background(), secondary.NewBag{Product: product})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		bags = append(bags, bag)
	}
	return bags
}

func TestNextForProduct(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())
	bags := seedInventory(t, ledger, "Product Alpha", "Product Beta", "Product Alpha")

	// The oldest Alpha bag is the first one seeded, even though a newer one exists.
	next, err := svc.NextForProduct(context.Background(), "Product Alpha")
	if err != nil {
		t.Fatalf("NextForProduct failed: %v", err)
	}
	if next.Ref != bags[0].Ref {
		t.Errorf("expected oldest bag %s, got %s", bags[0].Ref, next.Ref)
	}
}

func TestNextForProductNoStock(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())

	_, err := svc.NextForProduct(context.Background(), "Product Alpha")
	if !errors.Is(err, app.ErrNoStock) {
		t.Errorf("expected ErrNoStock, got %v", err)
	}
}

func TestNextForProductUnknownProduct(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())

	// Unknown product is a caller mistake, not an empty-stock condition.
	_, err := svc.NextForProduct(context.Background(), "Product Gamma")
	if !errors.Is(err, app.ErrUnknownProduct) {
		t.Errorf("expected ErrUnknownProduct, got %v", err)
	}
	if errors.Is(err, app.ErrNoStock) {
		t.Errorf("unknown product must not read as no stock: %v", err)
	}
}

func TestConfirmShip(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())
	bags := seedInventory(t, ledger, "Product Alpha")

	shipped, err := svc.ConfirmShip(context.Background(), primary.ConfirmShipRequest{
		Ref:       bags[0].Ref,
		Customer:  "Acme Corp",
		ShippedBy: "jsmith",
	})
	if err != nil {
		t.Fatalf("ConfirmShip failed: %v", err)
	}
	if shipped.Status != models.BagStatusShipped {
		t.Errorf("expected shipped status, got %s", shipped.Status)
	}
	if shipped.Customer != "Acme Corp" || shipped.ShippedBy != "jsmith" {
		t.Errorf("shipment details not recorded: %+v", shipped)
	}
}

func TestConfirmShipTwiceRejected(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())
	bags := seedInventory(t, ledger, "Product Alpha")
	ctx := context.Background()

	req := primary.ConfirmShipRequest{Ref: bags[0].Ref, Customer: "Acme Corp", ShippedBy: "jsmith"}
	if _, err := svc.ConfirmShip(ctx, req); err != nil {
		t.Fatalf("first ConfirmShip failed: %v", err)
	}

	_, err := svc.ConfirmShip(ctx, req)
	if !errors.Is(err, secondary.ErrAlreadyShipped) {
		t.Errorf("expected ErrAlreadyShipped, got %v", err)
	}
	// The guard rejects before the ledger is asked to mutate again.
	if len(ledger.shipCalls) != 1 {
		t.Errorf("expected 1 ledger mutation, got %d", len(ledger.shipCalls))
	}
}

func TestConfirmShipRequiresCustomer(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())
	bags := seedInventory(t, ledger, "Product Alpha")

	_, err := svc.ConfirmShip(context.Background(), primary.ConfirmShipRequest{
		Ref:       bags[0].Ref,
		ShippedBy: "jsmith",
	})
	if err == nil {
		t.Fatal("expected missing customer to be rejected")
	}
	if len(ledger.shipCalls) != 0 {
		t.Error("rejected request must not reach the ledger")
	}
}

func TestConfirmShipNotFound(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())

	_, err := svc.ConfirmShip(context.Background(), primary.ConfirmShipRequest{
		Ref:      "RCB-2026-9999",
		Customer: "Acme Corp",
	})
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestConfirmShipMalformedRef(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())

	_, err := svc.ConfirmShip(context.Background(), primary.ConfirmShipRequest{
		Ref:      "not-a-ref",
		Customer: "Acme Corp",
	})
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound for malformed ref, got %v", err)
	}
	if len(ledger.shipCalls) != 0 {
		t.Error("malformed ref must not reach the ledger")
	}
}

func TestConfirmShipShipperFromContext(t *testing.T) {
	ledger := newMockLedger()
	svc := app.NewDispatchService(ledger, testCatalog, "RCB", testMetrics())
	bags := seedInventory(t, ledger, "Product Beta")

	ctx := ctxutil.WithOperator(context.Background(), "mbrown")
	shipped, err := svc.ConfirmShip(ctx, primary.ConfirmShipRequest{
		Ref:      bags[0].Ref,
		Customer: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("ConfirmShip failed: %v", err)
	}
	if shipped.ShippedBy != "mbrown" {
		t.Errorf("expected shipper from context, got %q", shipped.ShippedBy)
	}
}
