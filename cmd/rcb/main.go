package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/rcb/internal/cli"
	"github.com/example/rcb/internal/version"
	"github.com/example/rcb/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "rcb",
		Short:   "rcb - warehouse slot allocation and FIFO dispatch for the bagging plant",
		Version: version.String(),
		Long: `rcb tracks every produced bag from the line to the truck: each bag gets a
unique reference and a warehouse slot, and shipping always pulls the oldest
in-stock bag of a product first.`,
	}

	// Station commands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.BagCmd())
	rootCmd.AddCommand(cli.ShipCmd())
	rootCmd.AddCommand(cli.StockCmd())
	rootCmd.AddCommand(cli.PoolCmd())
	rootCmd.AddCommand(cli.ReactorCmd())

	// Daemons
	rootCmd.AddCommand(cli.ServeCmd())

	err := rootCmd.Execute()
	if cerr := wire.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
