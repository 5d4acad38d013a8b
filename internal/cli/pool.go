package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/wire"
)

// PoolCmd returns the pool command with its subcommands.
func PoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Inspect the warehouse slot pool",
	}

	cmd.AddCommand(poolStatusCmd())
	cmd.AddCommand(poolShowCmd())
	cmd.AddCommand(poolGridCmd())
	cmd.AddCommand(poolEventsCmd())
	return cmd
}

func poolShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [code]",
		Short: "Show one slot and its occupant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.InquiryAdapter().Slot(NewContext(), args[0])
		},
	}
}

func poolStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List every slot with its occupancy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.InquiryAdapter().PoolStatus(NewContext())
		},
	}
}

func poolGridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Show the warehouse as a colored grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.InquiryAdapter().Grid(NewContext())
		},
	}
}

func poolEventsCmd() *cobra.Command {
	var (
		bagRef string
		kind   string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the slot audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.InquiryAdapter().Events(NewContext(), primary.PoolEventQuery{
				BagRef: bagRef,
				Kind:   models.PoolEventKind(kind),
				Limit:  limit,
			})
		},
	}

	cmd.Flags().StringVar(&bagRef, "bag", "", "filter by bag reference")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (allocate, release)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")
	return cmd
}

// StockCmd returns the stock command.
func StockCmd() *cobra.Command {
	var product string

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "List in-stock bags, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.InquiryAdapter().Stock(NewContext(), product)
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "filter by product")
	return cmd
}
