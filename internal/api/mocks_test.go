package api

import (
	"context"
	"encoding/json"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/domain/simulation"
	"github.com/phrazzld/finstart-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockLessonService mocks service.LessonService
type MockLessonService struct {
	mock.Mock
}

var _ service.LessonService = (*MockLessonService)(nil)

func (m *MockLessonService) ListLessons(ctx context.Context, moduleID string) ([]*domain.Lesson, error) {
	args := m.Called(ctx, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

func (m *MockLessonService) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	args := m.Called(ctx, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonService) GenerateLesson(
	ctx context.Context,
	req service.GenerateLessonRequest,
) (*domain.Lesson, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

// MockProgressService mocks service.ProgressService
type MockProgressService struct {
	mock.Mock
}

var _ service.ProgressService = (*MockProgressService)(nil)

func (m *MockProgressService) GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressService) CompleteLesson(ctx context.Context, userID, lessonID string) error {
	return m.Called(ctx, userID, lessonID).Error(0)
}

func (m *MockProgressService) RecordQuizScore(ctx context.Context, userID, lessonID string, score float64) error {
	return m.Called(ctx, userID, lessonID, score).Error(0)
}

func (m *MockProgressService) CompleteSimulation(ctx context.Context, userID, kind string) error {
	return m.Called(ctx, userID, kind).Error(0)
}

// MockSimulationService mocks service.SimulationService
type MockSimulationService struct {
	mock.Mock
}

var _ service.SimulationService = (*MockSimulationService)(nil)

func (m *MockSimulationService) Calculate(
	ctx context.Context,
	userID, kind string,
	inputs json.RawMessage,
) (simulation.Result, error) {
	args := m.Called(ctx, userID, kind, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(simulation.Result), args.Error(1)
}
