// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// OperatorKey is the context key for the authenticated operator identity.
// The engine never verifies credentials itself; it receives an identity that
// the surrounding system already authenticated.
type OperatorKey struct{}

// WithOperator returns a context with the operator identity embedded.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, OperatorKey{}, operator)
}

// OperatorFromContext returns the operator identity, or empty string if not set.
func OperatorFromContext(ctx context.Context) string {
	if v := ctx.Value(OperatorKey{}); v != nil {
		return v.(string)
	}
	return ""
}
