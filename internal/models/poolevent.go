package models

import "time"

// PoolEventKind classifies an entry in the slot audit trail.
type PoolEventKind string

const (
	// PoolEventAllocate records a slot being taken by a newly produced bag.
	PoolEventAllocate PoolEventKind = "allocate"
	// PoolEventRelease records a slot being freed when its bag shipped.
	PoolEventRelease PoolEventKind = "release"
)

// PoolEvent is one audit entry for a slot state change. Events are written in
// the same transaction as the state change they describe.
type PoolEvent struct {
	ID           string // uuid
	Kind         PoolEventKind
	LocationCode string
	BagRef       string
	Operator     string
	OccurredAt   time.Time
}
