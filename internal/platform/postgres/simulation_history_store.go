package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
)

// PostgresSimulationHistoryStore implements the store.SimulationHistoryStore
// interface using a PostgreSQL database as the storage backend.
type PostgresSimulationHistoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSimulationHistoryStore creates a new PostgreSQL implementation of
// the SimulationHistoryStore interface.
func NewPostgresSimulationHistoryStore(db store.DBTX, logger *slog.Logger) *PostgresSimulationHistoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSimulationHistoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "simulation_history_store")),
	}
}

// Ensure PostgresSimulationHistoryStore implements store.SimulationHistoryStore interface
var _ store.SimulationHistoryStore = (*PostgresSimulationHistoryStore)(nil)

// Append implements store.SimulationHistoryStore.Append
func (s *PostgresSimulationHistoryStore) Append(ctx context.Context, record *domain.SimulationRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("simulation record validation failed",
			slog.String("error", err.Error()),
			slog.String("simulation_type", record.SimulationType))
		return err
	}

	query := `
		INSERT INTO simulation_history (id, user_id, simulation_type, inputs, outputs, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.SimulationType,
		string(record.Inputs),
		string(record.Outputs),
		record.CreatedAt.UTC(),
	)
	if err != nil {
		log.Error("failed to append simulation record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("user_id", record.UserID))
		return store.NewStoreError("simulation_history", "append", "failed to append record", MapError(err))
	}

	log.Debug("simulation record appended",
		slog.String("record_id", record.ID.String()),
		slog.String("simulation_type", record.SimulationType))
	return nil
}
