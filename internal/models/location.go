package models

// LocationStatus represents whether a warehouse slot currently holds a bag.
type LocationStatus string

const (
	// LocationAvailable means the slot is free for allocation.
	LocationAvailable LocationStatus = "available"
	// LocationOccupied means the slot holds exactly one inventory bag.
	LocationOccupied LocationStatus = "occupied"
)

// Location is one addressable slot in the fixed-size warehouse pool.
// A location records occupancy only; the bag ledger is the source of truth
// for which bag occupies it.
type Location struct {
	Code     string // slot code, e.g. WH-03
	Position int    // fixed ordinal; allocation always picks the lowest available position
	Status   LocationStatus
}
