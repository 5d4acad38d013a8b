package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/rcb/internal/wire"
)

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the database and seed the warehouse pool",
		Long: `Create (or upgrade) the rcb database and seed the fixed warehouse slot
pool to the configured size. Safe to re-run: existing slots and their
occupancy are never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Wiring runs schema init and the idempotent pool seed.
			cfg := wire.Config()
			status, err := wire.InquiryService().PoolStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to verify pool: %w", err)
			}

			fmt.Printf("✓ Database ready\n")
			fmt.Printf("  Pool: %d slots (%d occupied, %d available)\n",
				len(status.Locations), status.Occupied, status.Available)
			fmt.Printf("  Products: %v\n", cfg.Bags.Products)
			return nil
		},
	}
}
