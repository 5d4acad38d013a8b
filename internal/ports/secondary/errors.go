package secondary

import "errors"

// Sentinel errors returned by persistence adapters. Services pass them through
// unwrapped in meaning; callers match with errors.Is.
var (
	// ErrPoolExhausted means no location is available. A terminal business
	// outcome, surfaced to the operator; never retried automatically.
	ErrPoolExhausted = errors.New("location pool exhausted")

	// ErrNotFound means the requested bag or location does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyShipped means the bag is not in inventory; the requested
	// transition is rejected with no state change.
	ErrAlreadyShipped = errors.New("bag already shipped")

	// ErrInvalidRelease means a release targeted a location that was not
	// occupied. This signals a ledger/pool inconsistency; the triggering
	// operation is rolled back so pool accounting stays intact.
	ErrInvalidRelease = errors.New("location not occupied")

	// ErrRefConflict means reference generation kept colliding after the
	// bounded in-transaction retries were spent.
	ErrRefConflict = errors.New("bag reference conflict")
)
