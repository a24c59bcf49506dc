package sqlite

import (
	"context"
	"log/slog"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
)

// SimulationHistoryStore implements store.SimulationHistoryStore on SQLite.
type SimulationHistoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSimulationHistoryStore creates a SQLite SimulationHistoryStore.
func NewSimulationHistoryStore(db store.DBTX, logger *slog.Logger) *SimulationHistoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SimulationHistoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "simulation_history_store"), slog.String("driver", "sqlite")),
	}
}

var _ store.SimulationHistoryStore = (*SimulationHistoryStore)(nil)

// Append implements store.SimulationHistoryStore.Append
func (s *SimulationHistoryStore) Append(ctx context.Context, record *domain.SimulationRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("simulation record validation failed",
			slog.String("error", err.Error()),
			slog.String("simulation_type", record.SimulationType))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO simulation_history (id, user_id, simulation_type, inputs, outputs, created_at)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6)`,
		record.ID.String(),
		record.UserID,
		record.SimulationType,
		string(record.Inputs),
		string(record.Outputs),
		toMillis(record.CreatedAt),
	)
	if err != nil {
		log.Error("failed to append simulation record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return store.NewStoreError("simulation_history", "append", "failed to append record", MapError(err))
	}
	return nil
}
