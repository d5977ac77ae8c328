package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
	defaultRetries        = 30
	defaultRetryInterval  = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationStatus is the schema version recorded by golang-migrate
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// Applied is false on a database no migration has touched yet
	Applied bool
}

// MigrationRunner applies the SQL files in db/migrations to a postgres
// database and optionally loads the demo seed files
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	retries        int
	retryInterval  time.Duration
}

type MigrationOption func(*MigrationRunner)

func WithMigrationsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) { mr.migrationsPath = path }
}

func WithSeedsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) { mr.seedsPath = path }
}

// WithRetry controls how long WaitForDatabase keeps pinging
func WithRetry(attempts int, interval time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.retries = attempts
		mr.retryInterval = interval
	}
}

func NewMigrationRunner(db *sql.DB, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		retries:        defaultRetries,
		retryInterval:  defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the attempts run out or ctx is done
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= mr.retries; attempt++ {
		if err = mr.db.PingContext(ctx); err == nil {
			return nil
		}
		slog.Info("database not ready", "attempt", attempt, "of", mr.retries, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(mr.retryInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", mr.retries, err)
}

func (mr *MigrationRunner) open() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, absPath)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres migration driver: %w", err)
	}
	return migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
}

// Up applies every pending migration. A dirty version left by a crashed run
// is forced clean first so the failed file is retried.
func (mr *MigrationRunner) Up() error {
	m, err := mr.open()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		slog.Warn("database is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	status, err := mr.Status()
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "version", status.Version)
	return nil
}

// Down reverts the given number of migrations
func (mr *MigrationRunner) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}

	m, err := mr.open()
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback %d steps: %w", steps, err)
	}
	return nil
}

func (mr *MigrationRunner) Status() (MigrationStatus, error) {
	m, err := mr.open()
	if err != nil {
		return MigrationStatus{}, err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return MigrationStatus{}, nil
	case err != nil:
		return MigrationStatus{}, fmt.Errorf("read migration version: %w", err)
	}
	return MigrationStatus{Version: version, Dirty: dirty, Applied: true}, nil
}

// LoadSeeds executes every *.sql file in the seeds directory in name order.
// A missing directory is not an error; a failing file is logged and skipped.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) (int, error) {
	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("list seed files: %w", err)
	}

	executed := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return executed, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			slog.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		executed++
	}
	return executed, nil
}

// RunMigrationsIfEnabled migrates on startup when AUTO_MIGRATE=true and seeds
// when SEED_DATABASE=true as well
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		slog.Debug("auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.Up(); err != nil {
		return err
	}

	if os.Getenv("SEED_DATABASE") == "true" {
		if _, err := runner.LoadSeeds(ctx); err != nil {
			slog.Warn("seed data loading failed", "error", err)
		}
	}
	return nil
}
