package app

import "errors"

// Service-level sentinel errors. Persistence-level sentinels live in
// ports/secondary and pass through the services untransformed.
var (
	// ErrNoStock means the requested product has no inventory bag to dispatch.
	ErrNoStock = errors.New("no stock for product")

	// ErrUnknownProduct means the product is not in the configured catalog.
	ErrUnknownProduct = errors.New("unknown product")
)
