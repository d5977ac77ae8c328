package cli

import (
	"fmt"
	"os"

	"budget-dashboard/internal/bootstrap"
	"budget-dashboard/internal/models"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// budgetFile is the YAML document read and written by the budgets commands
type budgetFile struct {
	Budgets []budgetFileEntry `yaml:"budgets"`
}

// budgetFileEntry keeps Budget loose on import; non-numeric values become 0
type budgetFileEntry struct {
	Category string      `yaml:"category"`
	Budget   interface{} `yaml:"budget"`
	Color    string      `yaml:"color,omitempty"`
}

func (app *App) newBudgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Export, replace or reset the budget configuration",
	}
	cmd.AddCommand(app.newBudgetsExportCmd(), app.newBudgetsImportCmd(), app.newBudgetsResetCmd())
	return cmd
}

func (app *App) newBudgetsExportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active budgets as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				data, err := marshalBudgets(c.Budgets.Current())
				if err != nil {
					return err
				}

				if file == "" {
					_, err = app.out.Write(data)
					return err
				}
				if err := os.WriteFile(file, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", file, err)
				}
				fmt.Fprintln(app.out, pterm.Success.Sprintf("Exported budgets to %s", file))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Destination file (default: stdout)")
	return cmd
}

func (app *App) newBudgetsImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace every budget with the contents of a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			entries, err := unmarshalBudgets(data)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			return app.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				c.Budgets.Load(cmd.Context())
				stored := c.Budgets.ReplaceAll(cmd.Context(), entries)
				fmt.Fprintln(app.out, pterm.Success.Sprintf("Imported %d budget categories", len(stored)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a top-level budgets list")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (app *App) newBudgetsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the stored budgets and restore the defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				budgets, err := c.Budgets.Reset(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(app.out, pterm.Success.Sprintf("Restored %d default budget categories", len(budgets)))
				return nil
			})
		},
	}
}

func marshalBudgets(budgets []models.BudgetCategory) ([]byte, error) {
	doc := budgetFile{Budgets: make([]budgetFileEntry, 0, len(budgets))}
	for _, b := range budgets {
		doc.Budgets = append(doc.Budgets, budgetFileEntry{
			Category: b.Category,
			Budget:   b.Budget.InexactFloat64(),
			Color:    b.Color,
		})
	}
	return yaml.Marshal(doc)
}

func unmarshalBudgets(data []byte) ([]models.BudgetCategory, error) {
	var doc budgetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	budgets := make([]models.BudgetCategory, 0, len(doc.Budgets))
	for _, entry := range doc.Budgets {
		budgets = append(budgets, models.BudgetCategory{
			Category: entry.Category,
			Budget:   models.ParseBudgetAmount(entry.Budget),
			Color:    entry.Color,
		})
	}
	return budgets, nil
}
