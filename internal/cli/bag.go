package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/rcb/internal/models"
	"github.com/example/rcb/internal/ports/primary"
	"github.com/example/rcb/internal/wire"
)

// BagCmd returns the bag command with its subcommands.
func BagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bag",
		Short: "Record and inspect produced bags",
		Long:  "Production-entry operations: record a bag off the line, show one, list the ledger",
	}

	cmd.AddCommand(bagAddCmd())
	cmd.AddCommand(bagShowCmd())
	cmd.AddCommand(bagListCmd())
	return cmd
}

func bagAddCmd() *cobra.Command {
	var (
		operator string
		quality  models.QualityResults
	)

	cmd := &cobra.Command{
		Use:   "add [product]",
		Short: "Record a newly produced bag and get its slot assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ProductionAdapter().Record(NewContext(), args[0], operator, quality)
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "operator recording the bag (defaults to station identity)")
	cmd.Flags().Float64Var(&quality.ParticleSize, "particle-size", 0, "particle size (µm)")
	cmd.Flags().Float64Var(&quality.PelletHardness, "hardness", 0, "pellet hardness (N)")
	cmd.Flags().Float64Var(&quality.Moisture, "moisture", 0, "moisture (%)")
	cmd.Flags().Float64Var(&quality.Toluene, "toluene", 0, "toluene content (mg/kg)")
	cmd.Flags().Float64Var(&quality.AshContent, "ash", 0, "ash content (%)")
	cmd.Flags().Float64Var(&quality.WeightLbs, "weight", 0, "bag weight (lbs)")
	return cmd
}

func bagShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [ref]",
		Short: "Show one bag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ProductionAdapter().Show(NewContext(), args[0])
		},
	}
}

func bagListCmd() *cobra.Command {
	var (
		status   string
		product  string
		location string
		since    string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bags in the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := primary.BagQuery{
				Status:   models.BagStatus(status),
				Product:  product,
				Location: location,
				Limit:    limit,
			}
			if since != "" {
				from, err := time.Parse("2006-01-02", since)
				if err != nil {
					return err
				}
				q.From = from
			}
			return wire.ProductionAdapter().List(NewContext(), q)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (inventory, shipped)")
	cmd.Flags().StringVar(&product, "product", "", "filter by product")
	cmd.Flags().StringVar(&location, "location", "", "filter by slot code")
	cmd.Flags().StringVar(&since, "since", "", "only bags created on/after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows")
	return cmd
}
