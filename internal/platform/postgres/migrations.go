package postgres

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// MigrationsFS returns the embedded goose migrations of the PostgreSQL schema.
func MigrationsFS() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// The directory is embedded at compile time.
		panic(fmt.Sprintf("postgres migrations: %v", err))
	}
	return sub
}

// NewMigrationProvider creates a goose provider running the embedded
// migrations against db.
func NewMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, MigrationsFS())
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres migration provider: %w", err)
	}
	return provider, nil
}
