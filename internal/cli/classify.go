package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (app *App) newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <description>...",
		Short: "Show which category each description falls into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rows := pterm.TableData{{"Description", "Category"}}
			for _, description := range args {
				category := app.classifier.Classify(description)
				rows = append(rows, []string{strings.TrimSpace(description), category})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
			if err != nil {
				return err
			}
			_, err = app.out.Write([]byte(table + "\n"))
			return err
		},
	}
}
