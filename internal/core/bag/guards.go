// Package bag contains the pure business logic for bag lifecycle operations.
// Guards are pure functions that evaluate preconditions without side effects.
package bag

import (
	"fmt"

	"github.com/example/rcb/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// RecordContext provides context for production guards.
type RecordContext struct {
	Product string
	Catalog []string // fixed product catalog from config
	Quality models.QualityResults
}

// ShipContext provides context for shipping guards.
type ShipContext struct {
	Ref       string
	Status    models.BagStatus
	Customer  string
	ShippedBy string
}

// InCatalog reports whether product is one of the configured catalog names.
func InCatalog(product string, catalog []string) bool {
	for _, p := range catalog {
		if p == product {
			return true
		}
	}
	return false
}

// CanRecord evaluates whether a production event is acceptable.
// Rules:
// - Product must be in the catalog
// - Measurements must be non-negative; moisture is a percentage
func CanRecord(ctx RecordContext) GuardResult {
	if !InCatalog(ctx.Product, ctx.Catalog) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("product %q is not in the catalog", ctx.Product),
		}
	}

	q := ctx.Quality
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"particle size", q.ParticleSize},
		{"pellet hardness", q.PelletHardness},
		{"moisture", q.Moisture},
		{"toluene", q.Toluene},
		{"ash content", q.AshContent},
		{"weight", q.WeightLbs},
	} {
		if m.value < 0 {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("%s must not be negative", m.name),
			}
		}
	}
	if q.Moisture > 100 {
		return GuardResult{Allowed: false, Reason: "moisture cannot exceed 100%"}
	}

	return GuardResult{Allowed: true}
}

// CanShip evaluates whether a bag can transition to shipped.
// Rules:
// - Bag must currently be in inventory (shipped is terminal)
// - Customer and shipper must be recorded
func CanShip(ctx ShipContext) GuardResult {
	if ctx.Status != models.BagStatusInventory {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("bag %s is not in inventory (status: %s)", ctx.Ref, ctx.Status),
		}
	}
	if ctx.Customer == "" {
		return GuardResult{Allowed: false, Reason: "customer is required"}
	}
	if ctx.ShippedBy == "" {
		return GuardResult{Allowed: false, Reason: "shipper identity is required"}
	}

	return GuardResult{Allowed: true}
}
