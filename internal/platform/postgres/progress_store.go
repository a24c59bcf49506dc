package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// GetOrCreate implements store.ProgressStore.GetOrCreate
// The no-op update on conflict lets RETURNING yield the row in both cases
// within one statement.
func (s *PostgresProgressStore) GetOrCreate(
	ctx context.Context,
	userID string,
	now time.Time,
) (*domain.UserProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == "" {
		return nil, domain.ErrEmptyUserID
	}

	query := `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES ($1, '[]'::jsonb, '{}'::jsonb, '[]'::jsonb, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = progress.user_id
		RETURNING user_id, completed_lessons, quiz_scores, simulations_completed, last_active
	`

	var r store.ProgressRecord
	err := s.db.QueryRowContext(ctx, query, userID, now.UTC()).Scan(
		&r.UserID,
		&r.CompletedLessons,
		&r.QuizScores,
		&r.SimulationsCompleted,
		&r.LastActive,
	)
	if err != nil {
		log.Error("failed to get or create progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, store.NewStoreError("progress", "get_or_create", "failed to load progress", MapError(err))
	}

	return r.ToDomain()
}

// Add-to-set statements. The array column is created with the value on first
// write and otherwise appended to only when it does not already contain it.
const (
	addCompletedLessonQuery = `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES ($1, jsonb_build_array($2::text), '{}'::jsonb, '[]'::jsonb, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			completed_lessons = CASE
				WHEN progress.completed_lessons @> jsonb_build_array($2::text) THEN progress.completed_lessons
				ELSE progress.completed_lessons || jsonb_build_array($2::text)
			END,
			last_active = EXCLUDED.last_active
	`

	addCompletedSimulationQuery = `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES ($1, '[]'::jsonb, '{}'::jsonb, jsonb_build_array($2::text), $3)
		ON CONFLICT (user_id) DO UPDATE SET
			simulations_completed = CASE
				WHEN progress.simulations_completed @> jsonb_build_array($2::text) THEN progress.simulations_completed
				ELSE progress.simulations_completed || jsonb_build_array($2::text)
			END,
			last_active = EXCLUDED.last_active
	`
)

// AddCompletedLesson implements store.ProgressStore.AddCompletedLesson
func (s *PostgresProgressStore) AddCompletedLesson(
	ctx context.Context,
	userID, lessonID string,
	at time.Time,
) error {
	return s.addToSet(ctx, "add_completed_lesson", addCompletedLessonQuery, userID, lessonID, at)
}

// AddCompletedSimulation implements store.ProgressStore.AddCompletedSimulation
func (s *PostgresProgressStore) AddCompletedSimulation(
	ctx context.Context,
	userID, kind string,
	at time.Time,
) error {
	return s.addToSet(ctx, "add_completed_simulation", addCompletedSimulationQuery, userID, kind, at)
}

func (s *PostgresProgressStore) addToSet(
	ctx context.Context,
	operation, query, userID, value string,
	at time.Time,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == "" {
		return domain.ErrEmptyUserID
	}

	if _, err := s.db.ExecContext(ctx, query, userID, value, at.UTC()); err != nil {
		log.Error("failed to update progress set",
			slog.String("error", err.Error()),
			slog.String("operation", operation),
			slog.String("user_id", userID),
			slog.String("value", value))
		return store.NewStoreError("progress", operation, "failed to update progress", MapError(err))
	}

	log.Debug("progress set updated",
		slog.String("operation", operation),
		slog.String("user_id", userID),
		slog.String("value", value))
	return nil
}

// SetQuizScore implements store.ProgressStore.SetQuizScore
func (s *PostgresProgressStore) SetQuizScore(
	ctx context.Context,
	userID, lessonID string,
	score float64,
	at time.Time,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == "" {
		return domain.ErrEmptyUserID
	}

	query := `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES ($1, '[]'::jsonb, jsonb_build_object($2::text, $3::float8), '[]'::jsonb, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			quiz_scores = progress.quiz_scores || jsonb_build_object($2::text, $3::float8),
			last_active = EXCLUDED.last_active
	`

	if _, err := s.db.ExecContext(ctx, query, userID, lessonID, score, at.UTC()); err != nil {
		log.Error("failed to set quiz score",
			slog.String("error", err.Error()),
			slog.String("user_id", userID),
			slog.String("lesson_id", lessonID))
		return store.NewStoreError("progress", "set_quiz_score", "failed to record quiz score", MapError(err))
	}

	log.Debug("quiz score recorded",
		slog.String("user_id", userID),
		slog.String("lesson_id", lessonID),
		slog.Float64("score", score))
	return nil
}
