package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
)

// gridColumns is how many slots are printed per row in the warehouse grid.
const gridColumns = 10

// InquiryAdapter is a thin adapter that translates CLI operations to
// InquiryService calls.
type InquiryAdapter struct {
	service primary.InquiryService
	out     io.Writer
}

// NewInquiryAdapter creates a new InquiryAdapter with the given service.
func NewInquiryAdapter(service primary.InquiryService, out io.Writer) *InquiryAdapter {
	return &InquiryAdapter{
		service: service,
		out:     out,
	}
}

// PoolStatus prints the occupancy totals and one line per slot.
func (a *InquiryAdapter) PoolStatus(ctx context.Context) error {
	status, err := a.service.PoolStatus(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nPool: %d slots, %d occupied, %d available\n",
		len(status.Locations), status.Occupied, status.Available)
	if status.Next != nil {
		fmt.Fprintf(a.out, "Next allocation: %s\n", status.Next.Code)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%-8s %-10s\n", "SLOT", "STATUS")
	fmt.Fprintln(a.out, "──────────────────")
	for _, loc := range status.Locations {
		fmt.Fprintf(a.out, "%-8s %-10s\n", loc.Code, loc.Status)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Grid prints the warehouse as a colored grid, occupied slots highlighted.
func (a *InquiryAdapter) Grid(ctx context.Context) error {
	status, err := a.service.PoolStatus(ctx)
	if err != nil {
		return err
	}

	occupied := color.New(color.FgRed)
	available := color.New(color.FgGreen)

	fmt.Fprintf(a.out, "\nWarehouse (%d/%d occupied)\n\n", status.Occupied, len(status.Locations))
	for i, loc := range status.Locations {
		cell := available.Sprintf("[%s]", loc.Code)
		if loc.Status == models.LocationOccupied {
			cell = occupied.Sprintf("[%s]", loc.Code)
		}
		fmt.Fprintf(a.out, "%s ", cell)
		if (i+1)%gridColumns == 0 {
			fmt.Fprintln(a.out)
		}
	}
	if len(status.Locations)%gridColumns != 0 {
		fmt.Fprintln(a.out)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Slot prints one slot and, when occupied, the bag stored in it.
func (a *InquiryAdapter) Slot(ctx context.Context, code string) error {
	loc, err := a.service.Slot(ctx, code)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nSlot:     %s\n", loc.Code)
	fmt.Fprintf(a.out, "Position: %d\n", loc.Position)
	fmt.Fprintf(a.out, "Status:   %s\n", loc.Status)
	if loc.Status == models.LocationOccupied {
		bags, err := a.service.Query(ctx, primary.BagQuery{
			Status:   models.BagStatusInventory,
			Location: loc.Code,
		})
		if err != nil {
			return err
		}
		if len(bags) == 1 {
			fmt.Fprintf(a.out, "Bag:      %s (%s)\n", bags[0].Ref, bags[0].Product)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Events prints the slot audit trail, most recent first.
func (a *InquiryAdapter) Events(ctx context.Context, q primary.PoolEventQuery) error {
	events, err := a.service.PoolEvents(ctx, q)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No pool events found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-9s %-8s %-15s %s\n", "WHEN", "KIND", "SLOT", "BAG", "OPERATOR")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, ev := range events {
		fmt.Fprintf(a.out, "%-20s %-9s %-8s %-15s %s\n",
			ev.OccurredAt.Format("2006-01-02 15:04:05"), ev.Kind, ev.LocationCode, ev.BagRef, ev.Operator)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Stock lists inventory bags, oldest first, optionally for one product.
func (a *InquiryAdapter) Stock(ctx context.Context, product string) error {
	bags, err := a.service.Query(ctx, primary.BagQuery{
		Status:  models.BagStatusInventory,
		Product: product,
	})
	if err != nil {
		return err
	}

	if len(bags) == 0 {
		fmt.Fprintln(a.out, "No bags in stock")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-15s %-15s %-8s %s\n", "REF", "PRODUCT", "SLOT", "PRODUCED")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────")
	for _, b := range bags {
		fmt.Fprintf(a.out, "%-15s %-15s %-8s %s\n",
			b.Ref, b.Product, b.LocationCode, b.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out)
	return nil
}
