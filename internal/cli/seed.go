package cli

import (
	"fmt"
	"time"

	"budget-dashboard/internal/bootstrap"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (app *App) newSeedCmd() *cobra.Command {
	var (
		count int
		month string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert generated demo transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			return app.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				ref := c.Clock.Now()
				if month != "" {
					parsed, err := time.Parse("2006-01", month)
					if err != nil {
						return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
					}
					ref = parsed
				}

				inserted, err := c.Transactions.Import(cmd.Context(), c.Generator.Generate(count, ref))
				if err != nil {
					return fmt.Errorf("failed to insert demo transactions: %w", err)
				}

				total, err := c.TransactionRepo.Count(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintln(app.out, pterm.Success.Sprintf("Inserted %d transactions (%d stored)", inserted, total))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 50, "Number of transactions to generate")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Reference month as YYYY-MM (default: current month)")
	return cmd
}
