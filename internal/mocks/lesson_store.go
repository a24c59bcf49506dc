package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/store"
)

// MockLessonStore implements store.LessonStore for testing.
type MockLessonStore struct {
	GetFn          func(ctx context.Context, id string) (*domain.Lesson, error)
	ListByModuleFn func(ctx context.Context, moduleID string) ([]*domain.Lesson, error)
	UpsertFn       func(ctx context.Context, lesson *domain.Lesson) error

	// Upserted records every lesson passed to Upsert.
	Upserted []*domain.Lesson
}

var _ store.LessonStore = (*MockLessonStore)(nil)

// Get implements store.LessonStore.
func (m *MockLessonStore) Get(ctx context.Context, id string) (*domain.Lesson, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, store.ErrLessonNotFound
}

// ListByModule implements store.LessonStore.
func (m *MockLessonStore) ListByModule(ctx context.Context, moduleID string) ([]*domain.Lesson, error) {
	if m.ListByModuleFn != nil {
		return m.ListByModuleFn(ctx, moduleID)
	}
	return []*domain.Lesson{}, nil
}

// Upsert implements store.LessonStore.
func (m *MockLessonStore) Upsert(ctx context.Context, lesson *domain.Lesson) error {
	m.Upserted = append(m.Upserted, lesson)
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, lesson)
	}
	return nil
}

// WithTx implements store.LessonStore. The mock ignores the transaction.
func (m *MockLessonStore) WithTx(*sql.Tx) store.LessonStore {
	return m
}
