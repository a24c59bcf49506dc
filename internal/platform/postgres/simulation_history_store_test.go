//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/platform/postgres"
	"github.com/phrazzld/finstart-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSimulationHistoryStore_Append(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresSimulationHistoryStore(tx, nil)
		userID := "user-" + uuid.NewString()

		record, err := domain.NewSimulationRecord(userID, "sip_calculator",
			json.RawMessage(`{"monthly_investment": 1000, "rate": 12, "months": 12}`),
			json.RawMessage(`{"future_value": 12809.33}`),
			time.Now())
		require.NoError(t, err)
		require.NoError(t, s.Append(ctx, record))

		var (
			kind    string
			inputs  []byte
			outputs []byte
		)
		err = tx.QueryRowContext(ctx,
			`SELECT simulation_type, inputs, outputs FROM simulation_history WHERE id = $1`,
			record.ID,
		).Scan(&kind, &inputs, &outputs)
		require.NoError(t, err)
		assert.Equal(t, "sip_calculator", kind)
		assert.JSONEq(t, `{"monthly_investment": 1000, "rate": 12, "months": 12}`, string(inputs))
		assert.JSONEq(t, `{"future_value": 12809.33}`, string(outputs))
	})
}

func TestPostgresSimulationHistoryStore_AppendRejectsInvalid(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	s := postgres.NewPostgresSimulationHistoryStore(db, nil)
	err := s.Append(context.Background(), &domain.SimulationRecord{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
