package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/phrazzld/finstart-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "finstart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func openMigratedSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db := openSQLite(t)
	provider, err := sqlite.NewMigrationProvider(db)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)
	return db
}
