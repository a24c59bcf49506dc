package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/finstart-api/internal/platform/sqlite"
	"github.com/phrazzld/finstart-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	insert := `INSERT INTO lessons (id, module_id, duration_minutes, created_at, updated_at) VALUES (?1, 'm', ?2, 0, 0)`
	_, err := db.ExecContext(ctx, insert, "dup", 1)
	require.NoError(t, err)

	t.Run("unique violation", func(t *testing.T) {
		_, err := db.ExecContext(ctx, insert, "dup", 1)
		require.Error(t, err)
		assert.True(t, sqlite.IsUniqueViolation(err))
		assert.ErrorIs(t, sqlite.MapError(err), store.ErrDuplicate)
	})

	t.Run("check violation", func(t *testing.T) {
		_, err := db.ExecContext(ctx, insert, "negative", -1)
		require.Error(t, err)
		assert.False(t, sqlite.IsUniqueViolation(err))
		assert.ErrorIs(t, sqlite.MapError(err), store.ErrInvalidEntity)
	})

	t.Run("not null violation", func(t *testing.T) {
		_, err := db.ExecContext(ctx,
			`INSERT INTO simulation_history (id, user_id, simulation_type, created_at) VALUES ('r1', NULL, 'sip', ?1)`,
			time.Now().UnixMilli())
		require.Error(t, err)
		assert.ErrorIs(t, sqlite.MapError(err), store.ErrInvalidEntity)
	})

	t.Run("no rows", func(t *testing.T) {
		assert.ErrorIs(t, sqlite.MapError(sql.ErrNoRows), store.ErrNotFound)
	})

	t.Run("passthrough", func(t *testing.T) {
		other := errors.New("boom")
		assert.Same(t, other, sqlite.MapError(other))
		assert.NoError(t, sqlite.MapError(nil))
	})
}
