package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
)

// ProgressService provides per-user progress operations. Every method takes
// the user id explicitly.
type ProgressService interface {
	// GetProgress returns the user's progress, creating an empty record on
	// first access.
	GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error)

	// CompleteLesson adds lessonID to the user's completed lessons. Repeating
	// the call is a no-op apart from refreshing last_active.
	CompleteLesson(ctx context.Context, userID, lessonID string) error

	// RecordQuizScore stores score for lessonID, replacing any earlier score.
	RecordQuizScore(ctx context.Context, userID, lessonID string, score float64) error

	// CompleteSimulation adds kind to the user's completed simulations.
	CompleteSimulation(ctx context.Context, userID, kind string) error
}

type progressServiceImpl struct {
	progress store.ProgressStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewProgressService creates a new ProgressService.
func NewProgressService(progress store.ProgressStore, logger *slog.Logger) (ProgressService, error) {
	if progress == nil {
		return nil, &ServiceError{Service: "progress", Operation: "create_service", Message: "progress store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &progressServiceImpl{
		progress: progress,
		logger:   logger.With(slog.String("component", "progress_service")),
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// GetProgress implements ProgressService.GetProgress
func (s *progressServiceImpl) GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, domain.ErrEmptyUserID)
	}

	p, err := s.progress.GetOrCreate(ctx, userID, s.now())
	if err != nil {
		return nil, newServiceError("progress", "get_progress", "failed to load progress", err)
	}
	return p, nil
}

// CompleteLesson implements ProgressService.CompleteLesson
func (s *progressServiceImpl) CompleteLesson(ctx context.Context, userID, lessonID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireIDs(userID, lessonID, "lesson_id"); err != nil {
		return err
	}

	if err := s.progress.AddCompletedLesson(ctx, userID, lessonID, s.now()); err != nil {
		return newServiceError("progress", "complete_lesson", "failed to record lesson completion", err)
	}

	log.Info("lesson completed",
		slog.String("user_id", userID),
		slog.String("lesson_id", lessonID))
	return nil
}

// RecordQuizScore implements ProgressService.RecordQuizScore
func (s *progressServiceImpl) RecordQuizScore(ctx context.Context, userID, lessonID string, score float64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := requireIDs(userID, lessonID, "lesson_id"); err != nil {
		return err
	}

	if err := s.progress.SetQuizScore(ctx, userID, lessonID, score, s.now()); err != nil {
		return newServiceError("progress", "record_quiz_score", "failed to record quiz score", err)
	}

	log.Info("quiz score recorded",
		slog.String("user_id", userID),
		slog.String("lesson_id", lessonID),
		slog.Float64("score", score))
	return nil
}

// CompleteSimulation implements ProgressService.CompleteSimulation
func (s *progressServiceImpl) CompleteSimulation(ctx context.Context, userID, kind string) error {
	if err := requireIDs(userID, kind, "simulation_type"); err != nil {
		return err
	}

	if err := s.progress.AddCompletedSimulation(ctx, userID, kind, s.now()); err != nil {
		return newServiceError("progress", "complete_simulation", "failed to record simulation completion", err)
	}
	return nil
}

func requireIDs(userID, value, field string) error {
	if userID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, domain.ErrEmptyUserID)
	}
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	return nil
}
