package models

import "time"

// BagStatus represents the lifecycle state of a bag.
// A bag is created as inventory and moves to shipped exactly once; shipped is terminal.
type BagStatus string

const (
	// BagStatusInventory means the bag is in the warehouse, occupying a location.
	BagStatusInventory BagStatus = "inventory"
	// BagStatusShipped means the bag has left the plant. Terminal.
	BagStatusShipped BagStatus = "shipped"
)

// QualityResults are the lab measurements taken when a bag comes off the line.
// Recorded once at production time and never mutated afterwards.
type QualityResults struct {
	ParticleSize   float64 // µm
	PelletHardness float64 // N
	Moisture       float64 // %
	Toluene        float64 // mg/kg
	AshContent     float64 // %
	WeightLbs      float64
}

// Bag is one produced, trackable unit of product.
type Bag struct {
	Ref          string // unique reference, e.g. RCB-2026-0042
	Product      string
	Quality      QualityResults
	LocationCode string // occupied slot while in inventory; historical after shipping
	Status       BagStatus
	Operator     string
	CreatedAt    time.Time

	// Set only on the transition to shipped.
	Customer  string
	ShippedAt *time.Time
	ShippedBy string
}
