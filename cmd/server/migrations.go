package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

// Migration commands accepted by -migrate.
const (
	migrateUp     = "up"
	migrateDown   = "down"
	migrateStatus = "status"
)

func isMigrationCommand(cmd string) bool {
	switch cmd {
	case migrateUp, migrateDown, migrateStatus:
		return true
	default:
		return false
	}
}

// migrator is the subset of *goose.Provider used by runMigrations.
type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Down(ctx context.Context) (*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
}

// runMigrations executes a migration command and logs each applied, rolled
// back or listed migration.
func runMigrations(ctx context.Context, m migrator, command string, log *slog.Logger) error {
	log = log.With(slog.String("component", "migrations"), slog.String("command", command))
	start := time.Now()

	switch command {
	case migrateUp:
		results, err := m.Up(ctx)
		for _, r := range results {
			logMigrationResult(log, r)
		}
		if err != nil {
			return fmt.Errorf("migrate up failed: %w", err)
		}
		log.Info("migrations applied",
			slog.Int("count", len(results)),
			slog.Duration("duration", time.Since(start)))

	case migrateDown:
		result, err := m.Down(ctx)
		if result != nil {
			logMigrationResult(log, result)
		}
		if err != nil {
			return fmt.Errorf("migrate down failed: %w", err)
		}

	case migrateStatus:
		statuses, err := m.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status failed: %w", err)
		}
		for _, s := range statuses {
			attrs := []any{slog.String("state", string(s.State))}
			if s.Source != nil {
				attrs = append(attrs,
					slog.Int64("version", s.Source.Version),
					slog.String("path", s.Source.Path))
			}
			if !s.AppliedAt.IsZero() {
				attrs = append(attrs, slog.Time("applied_at", s.AppliedAt))
			}
			log.Info("migration status", attrs...)
		}

	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	return nil
}

func logMigrationResult(log *slog.Logger, r *goose.MigrationResult) {
	attrs := []any{
		slog.String("direction", r.Direction),
		slog.Duration("duration", r.Duration),
	}
	if r.Source != nil {
		attrs = append(attrs, slog.Int64("version", r.Source.Version), slog.String("path", r.Source.Path))
	}
	if r.Error != nil {
		log.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
		return
	}
	log.Info("migration applied", attrs...)
}
