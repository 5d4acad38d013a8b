package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/example/rcb/internal/app"
	"github.com/example/rcb/internal/ports/primary"
)

// DispatchAdapter is a thin adapter that translates CLI operations to
// DispatchService calls.
type DispatchAdapter struct {
	service primary.DispatchService
	out     io.Writer
}

// NewDispatchAdapter creates a new DispatchAdapter with the given service.
func NewDispatchAdapter(service primary.DispatchService, out io.Writer) *DispatchAdapter {
	return &DispatchAdapter{
		service: service,
		out:     out,
	}
}

// Next prints the pick instruction for a product: the oldest in-stock bag and
// the slot to pull it from. An empty shelf is a normal answer, not an error.
func (a *DispatchAdapter) Next(ctx context.Context, product string) error {
	bag, err := a.service.NextForProduct(ctx, product)
	if errors.Is(err, app.ErrNoStock) {
		fmt.Fprintf(a.out, "No stock for %s\n", product)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Next to ship for %s:\n", product)
	fmt.Fprintf(a.out, "  Bag:  %s\n", bag.Ref)
	fmt.Fprintf(a.out, "  Slot: %s\n", bag.LocationCode)
	fmt.Fprintf(a.out, "  Produced: %s\n", bag.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "\nConfirm with: rcb ship confirm %s --customer \"...\"\n", bag.Ref)
	return nil
}

// Confirm ships a bag and prints the freed slot.
func (a *DispatchAdapter) Confirm(ctx context.Context, ref, customer, shipper string) error {
	bag, err := a.service.ConfirmShip(ctx, primary.ConfirmShipRequest{
		Ref:       ref,
		Customer:  customer,
		ShippedBy: shipper,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Shipped bag %s to %s\n", bag.Ref, bag.Customer)
	fmt.Fprintf(a.out, "  Slot %s is available again\n", bag.LocationCode)
	return nil
}
