package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/rcb/internal/wire"
)

// ShipCmd returns the ship command with its subcommands.
func ShipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Dispatch bags first-in-first-out",
		Long:  "Shipping-desk operations: look up the next bag to pull, then confirm the shipment",
	}

	cmd.AddCommand(shipNextCmd())
	cmd.AddCommand(shipConfirmCmd())
	return cmd
}

func shipNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next [product]",
		Short: "Show the oldest in-stock bag for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DispatchAdapter().Next(NewContext(), args[0])
		},
	}
}

func shipConfirmCmd() *cobra.Command {
	var (
		customer string
		shipper  string
	)

	cmd := &cobra.Command{
		Use:   "confirm [ref]",
		Short: "Confirm a shipment and free the bag's slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DispatchAdapter().Confirm(NewContext(), args[0], customer, shipper)
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer receiving the bag")
	cmd.Flags().StringVar(&shipper, "shipper", "", "operator confirming (defaults to station identity)")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}
