package sqlite

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

// LessonStore implements store.LessonStore on SQLite.
type LessonStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewLessonStore creates a SQLite LessonStore. If logger is nil, the default
// logger is used.
func NewLessonStore(db store.DBTX, logger *slog.Logger) *LessonStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LessonStore{
		db:     db,
		logger: logger.With(slog.String("component", "lesson_store"), slog.String("driver", "sqlite")),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ store.LessonStore = (*LessonStore)(nil)

// Get implements store.LessonStore.Get
func (s *LessonStore) Get(ctx context.Context, id string) (*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lesson, err := scanLesson(s.db.QueryRowContext(ctx,
		`SELECT `+lessonColumns+` FROM lessons WHERE id = ?1`, id))
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
func (s *LessonStore) ListByModule(ctx context.Context, moduleID string) ([]*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+lessonColumns+` FROM lessons WHERE module_id = ?1 ORDER BY position, id`, moduleID)
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
	return lessons, nil
}

// Upsert implements store.LessonStore.Upsert
func (s *LessonStore) Upsert(ctx context.Context, lesson *domain.Lesson) error {
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

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO lessons (`+lessonColumns+`)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12, ?13, ?14)
		ON CONFLICT (id) DO UPDATE SET
			module_id = excluded.module_id,
			title = excluded.title,
			content = excluded.content,
			duration_minutes = excluded.duration_minutes,
			examples = excluded.examples,
			quiz_questions = excluded.quiz_questions,
			simulation_type = excluded.simulation_type,
			daily_tip = excluded.daily_tip,
			key_points = excluded.key_points,
			real_example = excluded.real_example,
			position = excluded.position,
			updated_at = excluded.updated_at`,
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
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
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
func (s *LessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return &LessonStore{db: tx, logger: s.logger, now: s.now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row rowScanner) (*domain.Lesson, error) {
	var (
		r                    store.LessonRecord
		createdAt, updatedAt int64
	)
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
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = fromMillis(createdAt)
	r.UpdatedAt = fromMillis(updatedAt)
	return r.ToDomain()
}
