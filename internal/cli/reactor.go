package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/wire"
)

// ReactorCmd returns the reactor command with its subcommands.
func ReactorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reactor",
		Short: "Record and inspect reactor process logs",
	}

	cmd.AddCommand(reactorLogCmd())
	cmd.AddCommand(reactorListCmd())
	return cmd
}

func reactorLogCmd() *cobra.Command {
	var req primary.RecordProcessLogRequest

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record one reactor reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReactorAdapter().Record(NewContext(), req)
		},
	}

	cmd.Flags().StringVar(&req.Operator, "operator", "", "operator taking the reading (defaults to station identity)")
	cmd.Flags().Float64Var(&req.TolueneValue, "toluene", 0, "toluene value (mg/kg)")
	cmd.Flags().Float64Var(&req.FeedRate, "feed-rate", 0, "feed rate (kg/h)")
	cmd.Flags().Float64Var(&req.Reactor1Temp, "r1-temp", 0, "reactor 1 temperature (°C)")
	cmd.Flags().Float64Var(&req.Reactor2Temp, "r2-temp", 0, "reactor 2 temperature (°C)")
	cmd.Flags().Float64Var(&req.Reactor1Hz, "r1-hz", 0, "reactor 1 frequency (Hz)")
	cmd.Flags().Float64Var(&req.Reactor2Hz, "r2-hz", 0, "reactor 2 frequency (Hz)")
	return cmd
}

func reactorListCmd() *cobra.Command {
	var (
		since string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reactor readings, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := primary.ProcessLogQuery{Limit: limit}
			if since != "" {
				from, err := time.Parse("2006-01-02", since)
				if err != nil {
					return err
				}
				q.From = from
			}
			return wire.ReactorAdapter().List(NewContext(), q)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "only readings on/after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")
	return cmd
}
