package cli

import (
	"fmt"
	"strings"
	"time"

	"budget-dashboard/internal/bootstrap"
	"budget-dashboard/internal/models"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (app *App) newReportCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print budget spending, insights and the category breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ref time.Time
			if month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
				}
				ref = parsed
			}

			return app.withContainer(cmd.Context(), func(c *bootstrap.Container) error {
				var (
					dashboard *models.Dashboard
					err       error
				)
				if ref.IsZero() {
					dashboard, err = c.Dashboard.GetDashboard(cmd.Context())
				} else {
					dashboard, err = c.Dashboard.GetDashboardAt(cmd.Context(), ref)
				}
				if err != nil {
					return err
				}
				return app.renderReport(dashboard)
			})
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Reporting month as YYYY-MM (default: current month)")
	return cmd
}

func (app *App) renderReport(d *models.Dashboard) error {
	fmt.Fprintln(app.out, pterm.DefaultSection.Sprint("Budget report "+d.Period))

	fmt.Fprintf(app.out, "Income: %s  Expenses: %s  Net: %s\n\n",
		d.Stats.Income.StringFixed(2), d.Stats.Expenses.StringFixed(2), d.Stats.Total.StringFixed(2))

	spending := pterm.TableData{{"Category", "Budget", "Spent", "Remaining", "Used"}}
	for _, cat := range d.Spending {
		used := cat.PercentageUsed.StringFixed(1) + "%"
		if cat.Unbounded {
			used = "no budget"
		}
		if cat.IsOverBudget() {
			used = pterm.FgRed.Sprint(used)
		}
		spending = append(spending, []string{
			cat.Category,
			cat.Budget.StringFixed(2),
			cat.Spent.StringFixed(2),
			cat.Remaining.StringFixed(2),
			used,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(spending).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, table)

	if len(d.Insights) > 0 {
		items := make([]pterm.BulletListItem, 0, len(d.Insights))
		for _, insight := range d.Insights {
			items = append(items, pterm.BulletListItem{
				Level: 0,
				Text:  fmt.Sprintf("[%s] %s", strings.ToUpper(string(insight.Type)), insight.Message),
			})
		}
		list, err := pterm.DefaultBulletList.WithItems(items).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(app.out, list)
	} else {
		fmt.Fprintln(app.out, "No insights for this period.")
	}

	if len(d.Breakdown.Distribution) > 0 {
		distribution := pterm.TableData{{"Category", "Spent", "Share"}}
		for _, share := range d.Breakdown.Distribution {
			distribution = append(distribution, []string{
				share.Category,
				share.Value.StringFixed(2),
				share.Percentage.StringFixed(2) + "%",
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(distribution).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(app.out, table)
	}

	return nil
}
