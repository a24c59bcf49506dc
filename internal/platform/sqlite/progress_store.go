package sqlite

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
)

// ProgressStore implements store.ProgressStore on SQLite. Every mutation is a
// single upsert statement, so concurrent writers serialize on the database
// write lock without losing updates.
type ProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProgressStore creates a SQLite ProgressStore. If logger is nil, the
// default logger is used.
func NewProgressStore(db store.DBTX, logger *slog.Logger) *ProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store"), slog.String("driver", "sqlite")),
	}
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// GetOrCreate implements store.ProgressStore.GetOrCreate
func (s *ProgressStore) GetOrCreate(ctx context.Context, userID string, now time.Time) (*domain.UserProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == "" {
		return nil, domain.ErrEmptyUserID
	}

	var (
		r          store.ProgressRecord
		lastActive int64
	)
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES (?1, '[]', '{}', '[]', ?2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = progress.user_id
		RETURNING user_id, completed_lessons, quiz_scores, simulations_completed, last_active`,
		userID, toMillis(now),
	).Scan(&r.UserID, &r.CompletedLessons, &r.QuizScores, &r.SimulationsCompleted, &lastActive)
	if err != nil {
		log.Error("failed to get or create progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, store.NewStoreError("progress", "get_or_create", "failed to load progress", MapError(err))
	}
	r.LastActive = fromMillis(lastActive)

	return r.ToDomain()
}

const (
	addCompletedLessonQuery = `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES (?1, json_array(?2), '{}', '[]', ?3)
		ON CONFLICT (user_id) DO UPDATE SET
			completed_lessons = CASE
				WHEN EXISTS (SELECT 1 FROM json_each(progress.completed_lessons) WHERE value = ?2)
					THEN progress.completed_lessons
				ELSE json_insert(progress.completed_lessons, '$[#]', ?2)
			END,
			last_active = excluded.last_active`

	addCompletedSimulationQuery = `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES (?1, '[]', '{}', json_array(?2), ?3)
		ON CONFLICT (user_id) DO UPDATE SET
			simulations_completed = CASE
				WHEN EXISTS (SELECT 1 FROM json_each(progress.simulations_completed) WHERE value = ?2)
					THEN progress.simulations_completed
				ELSE json_insert(progress.simulations_completed, '$[#]', ?2)
			END,
			last_active = excluded.last_active`

	setQuizScoreQuery = `
		INSERT INTO progress (user_id, completed_lessons, quiz_scores, simulations_completed, last_active)
		VALUES (?1, '[]', json_object(?2, ?3), '[]', ?4)
		ON CONFLICT (user_id) DO UPDATE SET
			quiz_scores = json_patch(progress.quiz_scores, json_object(?2, ?3)),
			last_active = excluded.last_active`
)

// AddCompletedLesson implements store.ProgressStore.AddCompletedLesson
func (s *ProgressStore) AddCompletedLesson(ctx context.Context, userID, lessonID string, at time.Time) error {
	return s.exec(ctx, "add_completed_lesson", addCompletedLessonQuery, userID, userID, lessonID, toMillis(at))
}

// AddCompletedSimulation implements store.ProgressStore.AddCompletedSimulation
func (s *ProgressStore) AddCompletedSimulation(ctx context.Context, userID, kind string, at time.Time) error {
	return s.exec(ctx, "add_completed_simulation", addCompletedSimulationQuery, userID, userID, kind, toMillis(at))
}

// SetQuizScore implements store.ProgressStore.SetQuizScore
func (s *ProgressStore) SetQuizScore(ctx context.Context, userID, lessonID string, score float64, at time.Time) error {
	return s.exec(ctx, "set_quiz_score", setQuizScoreQuery, userID, userID, lessonID, score, toMillis(at))
}

func (s *ProgressStore) exec(ctx context.Context, operation, query, userID string, args ...any) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == "" {
		return domain.ErrEmptyUserID
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to update progress",
			slog.String("error", err.Error()),
			slog.String("operation", operation),
			slog.String("user_id", userID))
		return store.NewStoreError("progress", operation, "failed to update progress", MapError(err))
	}

	log.Debug("progress updated",
		slog.String("operation", operation),
		slog.String("user_id", userID))
	return nil
}
