package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"budget-dashboard/internal/config"
	"budget-dashboard/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var (
	direction     = flag.String("direction", "up", "Migration direction: up, down or status")
	steps         = flag.Int("steps", 1, "Number of migrations to roll back with -direction=down")
	migrationsDir = flag.String("migrations", "db/migrations", "Path to migrations directory")
	seedsDir      = flag.String("seeds", "db/seeds", "Path to seed files")
	waitForDB     = flag.Duration("wait", 60*time.Second, "How long to wait for the database to accept connections")
	seed          = flag.Bool("seed", false, "Load the demo seed files after migrating up")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("Error: migrations target postgres, DB_DRIVER is %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db,
		database.WithMigrationsPath(*migrationsDir),
		database.WithSeedsPath(*seedsDir),
	)

	waitCtx, cancel := context.WithTimeout(context.Background(), *waitForDB)
	defer cancel()
	if err := runner.WaitForDatabase(waitCtx); err != nil {
		log.Fatalf("Database unavailable: %v", err)
	}

	switch *direction {
	case "up":
		if err := runner.Up(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		if *seed {
			executed, err := runner.LoadSeeds(context.Background())
			if err != nil {
				log.Fatalf("Seed data loading failed: %v", err)
			}
			log.Printf("Executed %d seed file(s)", executed)
		}
	case "down":
		if err := runner.Down(*steps); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Printf("Rolled back %d migration(s)", *steps)
	case "status":
		status, err := runner.Status()
		if err != nil {
			log.Fatalf("Failed to read migration status: %v", err)
		}
		if !status.Applied {
			log.Println("No migrations applied yet")
			return
		}
		log.Printf("Migration version: %d (dirty: %t)", status.Version, status.Dirty)
	default:
		log.Fatalf("Error: unknown direction %q", *direction)
	}
}
