package store

import (
	"context"

	"github.com/phrazzld/finstart-api/internal/domain"
)

// SimulationHistoryStore defines the interface for the append-only log of
// calculator runs. Records are never read back by the application.
type SimulationHistoryStore interface {
	// Append stores a new history record.
	// Returns validation errors from the domain SimulationRecord if data is invalid.
	Append(ctx context.Context, record *domain.SimulationRecord) error
}
