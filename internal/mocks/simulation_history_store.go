package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/store"
)

// MockSimulationHistoryStore implements store.SimulationHistoryStore for testing.
type MockSimulationHistoryStore struct {
	AppendFn func(ctx context.Context, record *domain.SimulationRecord) error

	mu      sync.Mutex
	records []*domain.SimulationRecord
}

var _ store.SimulationHistoryStore = (*MockSimulationHistoryStore)(nil)

// Append implements store.SimulationHistoryStore.
func (m *MockSimulationHistoryStore) Append(ctx context.Context, record *domain.SimulationRecord) error {
	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()

	if m.AppendFn != nil {
		return m.AppendFn(ctx, record)
	}
	return nil
}

// Records returns every record passed to Append.
func (m *MockSimulationHistoryStore) Records() []*domain.SimulationRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.SimulationRecord(nil), m.records...)
}
