package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
)

const lessonColumns = `id, module_id, title, content, duration_minutes, examples, quiz_questions,
	simulation_type, daily_tip, key_points, real_example, position, created_at, updated_at`

// PostgresLessonStore implements the store.LessonStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLessonStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewPostgresLessonStore creates a new PostgreSQL implementation of the LessonStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLessonStore(db store.DBTX, logger *slog.Logger) *PostgresLessonStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLessonStore{
		db:     db,
		logger: logger.With(slog.String("component", "lesson_store")),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Ensure PostgresLessonStore implements store.LessonStore interface
var _ store.LessonStore = (*PostgresLessonStore)(nil)

// Get implements store.LessonStore.Get
func (s *PostgresLessonStore) Get(ctx context.Context, id string) (*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	lesson, err := scanLesson(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("lesson not found", slog.String("lesson_id", id))
			return nil, store.ErrLessonNotFound
		}
		log.Error("failed to get lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id))
		return nil, store.NewStoreError("lesson", "get", "failed to get lesson", MapError(err))
	}

	return lesson, nil
}

// ListByModule implements store.LessonStore.ListByModule
func (s *PostgresLessonStore) ListByModule(ctx context.Context, moduleID string) ([]*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + lessonColumns + `
		FROM lessons
		WHERE module_id = $1
		ORDER BY position, id`

	rows, err := s.db.QueryContext(ctx, query, moduleID)
	if err != nil {
		log.Error("failed to list lessons",
			slog.String("error", err.Error()),
			slog.String("module_id", moduleID))
		return nil, store.NewStoreError("lesson", "list", "failed to query lessons", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	lessons := []*domain.Lesson{}
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, store.NewStoreError("lesson", "list", "failed to scan lesson", MapError(err))
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("lesson", "list", "failed to iterate lessons", MapError(err))
	}

	log.Debug("listed lessons",
		slog.String("module_id", moduleID),
		slog.Int("count", len(lessons)))
	return lessons, nil
}

// Upsert implements store.LessonStore.Upsert
func (s *PostgresLessonStore) Upsert(ctx context.Context, lesson *domain.Lesson) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lesson.Validate(); err != nil {
		log.Warn("lesson validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID))
		return err
	}

	record, err := store.NewLessonRecord(lesson, s.now())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lessons (` + lessonColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8, $9, $10::jsonb, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			module_id = EXCLUDED.module_id,
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			duration_minutes = EXCLUDED.duration_minutes,
			examples = EXCLUDED.examples,
			quiz_questions = EXCLUDED.quiz_questions,
			simulation_type = EXCLUDED.simulation_type,
			daily_tip = EXCLUDED.daily_tip,
			key_points = EXCLUDED.key_points,
			real_example = EXCLUDED.real_example,
			position = EXCLUDED.position,
			updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.ModuleID,
		record.Title,
		record.Content,
		record.DurationMinutes,
		string(record.Examples),
		string(record.QuizQuestions),
		record.SimulationType,
		record.DailyTip,
		string(record.KeyPoints),
		record.RealExample,
		record.Position,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID))
		return store.NewStoreError("lesson", "upsert", "failed to upsert lesson", MapError(err))
	}

	log.Info("lesson upserted",
		slog.String("lesson_id", lesson.ID),
		slog.String("module_id", lesson.ModuleID))
	return nil
}

// WithTx implements store.LessonStore.WithTx
func (s *PostgresLessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return &PostgresLessonStore{
		db:     tx,
		logger: s.logger,
		now:    s.now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row rowScanner) (*domain.Lesson, error) {
	var r store.LessonRecord
	err := row.Scan(
		&r.ID,
		&r.ModuleID,
		&r.Title,
		&r.Content,
		&r.DurationMinutes,
		&r.Examples,
		&r.QuizQuestions,
		&r.SimulationType,
		&r.DailyTip,
		&r.KeyPoints,
		&r.RealExample,
		&r.Position,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r.ToDomain()
}
