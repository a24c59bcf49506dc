package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/finstart-api/internal/config"
	"github.com/phrazzld/finstart-api/internal/platform/postgres"
	"github.com/phrazzld/finstart-api/internal/platform/sqlite"
	"github.com/phrazzld/finstart-api/internal/store"
	"github.com/pressly/goose/v3"
)

const databasePingTimeout = 5 * time.Second

// stores groups the storage collaborators of the services.
type stores struct {
	lessons  store.LessonStore
	progress store.ProgressStore
	history  store.SimulationHistoryStore
}

// openDatabase connects to the configured database driver.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, databasePingTimeout)
	defer cancel()

	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = postgres.Open(ctx, cfg.URL)
	case config.DriverSQLite:
		db, err = sqlite.Open(ctx, cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("database connection established", slog.String("driver", cfg.Driver))
	return db, nil
}

// newStores creates the store implementations of driver on db.
func newStores(db *sql.DB, driver string, log *slog.Logger) (stores, error) {
	switch driver {
	case config.DriverPostgres:
		return stores{
			lessons:  postgres.NewPostgresLessonStore(db, log),
			progress: postgres.NewPostgresProgressStore(db, log),
			history:  postgres.NewPostgresSimulationHistoryStore(db, log),
		}, nil
	case config.DriverSQLite:
		return stores{
			lessons:  sqlite.NewLessonStore(db, log),
			progress: sqlite.NewProgressStore(db, log),
			history:  sqlite.NewSimulationHistoryStore(db, log),
		}, nil
	default:
		return stores{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// newMigrationProvider returns the goose provider of driver's embedded
// migrations.
func newMigrationProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.NewMigrationProvider(db)
	case config.DriverSQLite:
		return sqlite.NewMigrationProvider(db)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
