package main

import (
	"context"
	"fmt"
	"os"

	"budget-dashboard/internal/bootstrap"
	"budget-dashboard/internal/cli"
	"budget-dashboard/internal/config"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := cli.NewApp(version, func(ctx context.Context) (*bootstrap.Container, error) {
		return bootstrap.Open(ctx, cfg)
	})

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
