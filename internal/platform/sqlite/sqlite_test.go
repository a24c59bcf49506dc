package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/phrazzld/finstart-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// openTestDB opens a migrated database in a per-test temporary directory.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "finstart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	provider, err := sqlite.NewMigrationProvider(db)
	require.NoError(t, err)
	_, err = provider.Up(ctx)
	require.NoError(t, err)

	return db
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), "  ")
	require.Error(t, err)
}

func TestMigrations_UpAndDown(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	provider, err := sqlite.NewMigrationProvider(db)
	require.NoError(t, err)

	statuses, err := provider.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	for range statuses {
		_, err := provider.Down(ctx)
		require.NoError(t, err)
	}

	var count int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('lessons', 'progress', 'simulation_history')`,
	).Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)
}
