// Package cli implements the budgetctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"budget-dashboard/internal/bootstrap"
	"budget-dashboard/internal/services"

	"github.com/spf13/cobra"
)

// Opener connects to storage and returns the wired services. The caller closes the container.
type Opener func(ctx context.Context) (*bootstrap.Container, error)

// App is the budgetctl command-line application
type App struct {
	rootCmd    *cobra.Command
	open       Opener
	classifier services.CategoryServiceInterface
	out        io.Writer
}

// NewApp builds the command tree. Commands that need storage call open lazily,
// so classify works without a database.
func NewApp(version string, open Opener) *App {
	app := &App{
		open:       open,
		classifier: services.NewCategoryService(),
		out:        os.Stdout,
	}

	rootCmd := &cobra.Command{
		Use:           "budgetctl",
		Short:         "Inspect and manage the budget dashboard from the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "budgetctl version: %s\n" .Version}}`)

	rootCmd.AddCommand(
		app.newReportCmd(),
		app.newClassifyCmd(),
		app.newBudgetsCmd(),
		app.newSeedCmd(),
	)

	app.rootCmd = rootCmd
	return app
}

// SetOutput redirects command output, mainly for tests
func (app *App) SetOutput(w io.Writer) {
	app.out = w
	app.rootCmd.SetOut(w)
	app.rootCmd.SetErr(w)
}

// SetArgs overrides os.Args for the next Execute
func (app *App) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// Execute runs the CLI application
func (app *App) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext runs the CLI application with a cancellable context
func (app *App) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

func (app *App) withContainer(ctx context.Context, fn func(c *bootstrap.Container) error) error {
	if app.open == nil {
		return fmt.Errorf("no storage configured")
	}

	c, err := app.open(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}
