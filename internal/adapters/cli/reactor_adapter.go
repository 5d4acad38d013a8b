package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/rcb/internal/ports/primary"
)

// ReactorAdapter is a thin adapter that translates CLI operations to
// ProcessLogService calls.
type ReactorAdapter struct {
	service primary.ProcessLogService
	out     io.Writer
}

// NewReactorAdapter creates a new ReactorAdapter with the given service.
func NewReactorAdapter(service primary.ProcessLogService, out io.Writer) *ReactorAdapter {
	return &ReactorAdapter{
		service: service,
		out:     out,
	}
}

// Record appends one reactor reading.
func (a *ReactorAdapter) Record(ctx context.Context, req primary.RecordProcessLogRequest) error {
	entry, err := a.service.Record(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Logged reactor reading #%d at %s\n",
		entry.ID, entry.LoggedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// List prints readings in the requested window, most recent first.
func (a *ReactorAdapter) List(ctx context.Context, q primary.ProcessLogQuery) error {
	logs, err := a.service.List(ctx, q)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No process logs found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-10s %-9s %-9s %-8s %-8s %-7s %-7s %s\n",
		"WHEN", "OPERATOR", "TOLUENE", "FEED", "R1 °C", "R2 °C", "R1 Hz", "R2 Hz", "")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, l := range logs {
		fmt.Fprintf(a.out, "%-20s %-10s %-9.1f %-9.1f %-8.1f %-8.1f %-7.1f %-7.1f\n",
			l.LoggedAt.Format("2006-01-02 15:04:05"), l.Operator,
			l.TolueneValue, l.FeedRate, l.Reactor1Temp, l.Reactor2Temp, l.Reactor1Hz, l.Reactor2Hz)
	}
	fmt.Fprintln(a.out)
	return nil
}
