// Package pool contains the pure business logic for the warehouse slot pool.
// The allocation order defined here is the contract the storage layer must
// honour: lowest position first, always.
package pool

import "github.com/example/rcb/internal/models"

// NextAvailable returns the location an allocation must pick from the given
// snapshot: the available location with the lowest position. Returns nil when
// the pool is exhausted.
func NextAvailable(locations []*models.Location) *models.Location {
	var best *models.Location
	for _, loc := range locations {
		if loc.Status != models.LocationAvailable {
			continue
		}
		if best == nil || loc.Position < best.Position {
			best = loc
		}
	}
	return best
}

// Summarize counts available and occupied locations in a snapshot.
// available + occupied always equals the pool size.
func Summarize(locations []*models.Location) (available, occupied int) {
	for _, loc := range locations {
		switch loc.Status {
		case models.LocationOccupied:
			occupied++
		default:
			available++
		}
	}
	return available, occupied
}
