// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
)

// ProductionAdapter is a thin adapter that translates CLI operations to
// ProductionService calls.
type ProductionAdapter struct {
	service primary.ProductionService
	out     io.Writer
}

// NewProductionAdapter creates a new ProductionAdapter with the given service.
func NewProductionAdapter(service primary.ProductionService, out io.Writer) *ProductionAdapter {
	return &ProductionAdapter{
		service: service,
		out:     out,
	}
}

// Record registers a produced bag and prints the label hand-off data.
func (a *ProductionAdapter) Record(ctx context.Context, product, operator string, quality models.QualityResults) error {
	resp, err := a.service.RecordBag(ctx, primary.RecordBagRequest{
		Product:  product,
		Quality:  quality,
		Operator: operator,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded bag %s: %s\n", resp.Ref, resp.Bag.Product)
	fmt.Fprintf(a.out, "  Store in slot: %s\n", resp.Location)
	fmt.Fprintf(a.out, "  Hardness: %.1f N  Moisture: %.1f %%  Toluene: %.1f mg/kg  Ash: %.1f %%  Weight: %.1f lbs\n",
		resp.Bag.Quality.PelletHardness, resp.Bag.Quality.Moisture,
		resp.Bag.Quality.Toluene, resp.Bag.Quality.AshContent, resp.Bag.Quality.WeightLbs)
	return nil
}

// Show displays details for a single bag.
func (a *ProductionAdapter) Show(ctx context.Context, ref string) error {
	bag, err := a.service.GetBag(ctx, ref)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nBag:      %s\n", bag.Ref)
	fmt.Fprintf(a.out, "Product:  %s\n", bag.Product)
	fmt.Fprintf(a.out, "Status:   %s\n", bag.Status)
	if bag.Status == models.BagStatusInventory {
		fmt.Fprintf(a.out, "Location: %s\n", bag.LocationCode)
	}
	fmt.Fprintf(a.out, "Operator: %s\n", bag.Operator)
	fmt.Fprintf(a.out, "Created:  %s\n", bag.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Quality:  particle %.1f µm, hardness %.1f N, moisture %.1f %%, toluene %.1f mg/kg, ash %.1f %%, weight %.1f lbs\n",
		bag.Quality.ParticleSize, bag.Quality.PelletHardness, bag.Quality.Moisture,
		bag.Quality.Toluene, bag.Quality.AshContent, bag.Quality.WeightLbs)
	if bag.Status == models.BagStatusShipped {
		fmt.Fprintf(a.out, "Customer: %s\n", bag.Customer)
		if bag.ShippedAt != nil {
			fmt.Fprintf(a.out, "Shipped:  %s by %s\n", bag.ShippedAt.Format("2006-01-02 15:04:05"), bag.ShippedBy)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// List lists bags with optional filters.
func (a *ProductionAdapter) List(ctx context.Context, q primary.BagQuery) error {
	bags, err := a.service.ListBags(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to list bags: %w", err)
	}

	if len(bags) == 0 {
		fmt.Fprintln(a.out, "No bags found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-15s %-15s %-10s %-8s %s\n", "REF", "PRODUCT", "STATUS", "SLOT", "CREATED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, b := range bags {
		slot := b.LocationCode
		if b.Status == models.BagStatusShipped {
			slot = "-"
		}
		fmt.Fprintf(a.out, "%-15s %-15s %-10s %-8s %s\n",
			b.Ref, b.Product, b.Status, slot, b.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out)

	return nil
}
