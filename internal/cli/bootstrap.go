// Package cli provides the CLI commands for the rcb application.
package cli

import (
	gocontext "context"
	"os"

	"github.com/example/rcb/internal/ctxutil"
	"github.com/example/rcb/internal/wire"
)

// NewContext creates the base context for command execution with the operator
// identity embedded. The identity comes from the RCB_OPERATOR environment
// variable (set by the station login wrapper) or the configured default;
// explicit --operator flags still win inside the services.
func NewContext() gocontext.Context {
	ctx := gocontext.Background()
	operator := os.Getenv("RCB_OPERATOR")
	if operator == "" {
		operator = wire.Config().App.DefaultOperator
	}
	if operator != "" {
		ctx = ctxutil.WithOperator(ctx, operator)
	}
	return ctx
}
