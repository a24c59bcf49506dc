package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/store"
)

// ProgressCall records one mutating call on MockProgressStore.
type ProgressCall struct {
	Method string
	UserID string
	Value  string
	Score  float64
	At     time.Time
}

// MockProgressStore implements store.ProgressStore for testing.
type MockProgressStore struct {
	GetOrCreateFn            func(ctx context.Context, userID string, now time.Time) (*domain.UserProgress, error)
	AddCompletedLessonFn     func(ctx context.Context, userID, lessonID string, at time.Time) error
	SetQuizScoreFn           func(ctx context.Context, userID, lessonID string, score float64, at time.Time) error
	AddCompletedSimulationFn func(ctx context.Context, userID, kind string, at time.Time) error

	mu    sync.Mutex
	calls []ProgressCall
}

var _ store.ProgressStore = (*MockProgressStore)(nil)

// Calls returns the recorded mutating calls in order.
func (m *MockProgressStore) Calls() []ProgressCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ProgressCall(nil), m.calls...)
}

func (m *MockProgressStore) record(c ProgressCall) {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()
}

// GetOrCreate implements store.ProgressStore. Without GetOrCreateFn it
// returns a fresh record.
func (m *MockProgressStore) GetOrCreate(ctx context.Context, userID string, now time.Time) (*domain.UserProgress, error) {
	if m.GetOrCreateFn != nil {
		return m.GetOrCreateFn(ctx, userID, now)
	}
	return domain.NewUserProgress(userID, now)
}

// AddCompletedLesson implements store.ProgressStore.
func (m *MockProgressStore) AddCompletedLesson(ctx context.Context, userID, lessonID string, at time.Time) error {
	m.record(ProgressCall{Method: "AddCompletedLesson", UserID: userID, Value: lessonID, At: at})
	if m.AddCompletedLessonFn != nil {
		return m.AddCompletedLessonFn(ctx, userID, lessonID, at)
	}
	return nil
}

// SetQuizScore implements store.ProgressStore.
func (m *MockProgressStore) SetQuizScore(
	ctx context.Context,
	userID, lessonID string,
	score float64,
	at time.Time,
) error {
	m.record(ProgressCall{Method: "SetQuizScore", UserID: userID, Value: lessonID, Score: score, At: at})
	if m.SetQuizScoreFn != nil {
		return m.SetQuizScoreFn(ctx, userID, lessonID, score, at)
	}
	return nil
}

// AddCompletedSimulation implements store.ProgressStore.
func (m *MockProgressStore) AddCompletedSimulation(ctx context.Context, userID, kind string, at time.Time) error {
	m.record(ProgressCall{Method: "AddCompletedSimulation", UserID: userID, Value: kind, At: at})
	if m.AddCompletedSimulationFn != nil {
		return m.AddCompletedSimulationFn(ctx, userID, kind, at)
	}
	return nil
}
