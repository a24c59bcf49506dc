package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/generation"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/store"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fixed attributes of generated lessons.
const (
	DefaultDifficulty       = "beginner"
	GeneratedLessonDuration = 3
	GeneratedLessonOrder    = 1
)

// GenerateLessonRequest holds the parameters of a lesson generation.
type GenerateLessonRequest struct {
	ModuleID   string
	Topic      string
	Difficulty string
}

// LessonService provides lesson-related operations.
type LessonService interface {
	// ListLessons returns the stored lessons of a module, possibly empty.
	ListLessons(ctx context.Context, moduleID string) ([]*domain.Lesson, error)

	// GetLesson returns a lesson by id or ErrLessonNotFound.
	GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error)

	// GenerateLesson asks the generator for a lesson on a topic and upserts it.
	GenerateLesson(ctx context.Context, req GenerateLessonRequest) (*domain.Lesson, error)
}

// lessonServiceImpl implements the LessonService interface.
type lessonServiceImpl struct {
	lessons   store.LessonStore
	generator generation.Generator
	prompts   *generation.PromptBuilder
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewLessonService creates a new LessonService.
// It returns an error if any of the required dependencies are nil.
func NewLessonService(
	lessons store.LessonStore,
	generator generation.Generator,
	prompts *generation.PromptBuilder,
	logger *slog.Logger,
) (LessonService, error) {
	if lessons == nil {
		return nil, &ServiceError{Service: "lesson", Operation: "create_service", Message: "lesson store cannot be nil"}
	}
	if generator == nil {
		return nil, &ServiceError{Service: "lesson", Operation: "create_service", Message: "generator cannot be nil"}
	}
	if prompts == nil {
		return nil, &ServiceError{Service: "lesson", Operation: "create_service", Message: "prompt builder cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &lessonServiceImpl{
		lessons:   lessons,
		generator: generator,
		prompts:   prompts,
		logger:    logger.With(slog.String("component", "lesson_service")),
		tracer:    defaultTracer(),
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

// ListLessons implements LessonService.ListLessons
func (s *lessonServiceImpl) ListLessons(ctx context.Context, moduleID string) ([]*domain.Lesson, error) {
	lessons, err := s.lessons.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, newServiceError("lesson", "list_lessons", "failed to list lessons", err)
	}
	return lessons, nil
}

// GetLesson implements LessonService.GetLesson
func (s *lessonServiceImpl) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	lesson, err := s.lessons.Get(ctx, lessonID)
	if err != nil {
		return nil, newServiceError("lesson", "get_lesson", "failed to get lesson", err)
	}
	return lesson, nil
}

// LessonID derives the id of a generated lesson: the module id, an
// underscore, and the lower-cased topic with spaces replaced by underscores.
func LessonID(moduleID, topic string) string {
	slug := cases.Lower(language.Und).String(topic)
	return moduleID + "_" + strings.ReplaceAll(slug, " ", "_")
}

// GenerateLesson implements LessonService.GenerateLesson
func (s *lessonServiceImpl) GenerateLesson(
	ctx context.Context,
	req GenerateLessonRequest,
) (lesson *domain.Lesson, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if req.ModuleID == "" || req.Topic == "" {
		return nil, fmt.Errorf("%w: module_id and topic are required", ErrInvalidRequest)
	}
	if req.Difficulty == "" {
		req.Difficulty = DefaultDifficulty
	}

	lessonID := LessonID(req.ModuleID, req.Topic)

	ctx, span := startSpan(ctx, s.tracer, "LessonService.GenerateLesson",
		attribute.String("lesson.id", lessonID),
		attribute.String("lesson.module_id", req.ModuleID),
		attribute.String("lesson.difficulty", req.Difficulty),
	)
	defer func() { endSpan(span, err) }()

	genReq, err := s.prompts.LessonRequest(req.Topic, req.Difficulty)
	if err != nil {
		return nil, newServiceError("lesson", "generate_lesson", "failed to build prompt", err)
	}

	raw, err := s.generator.Generate(ctx, genReq)
	if err != nil {
		log.Error("lesson generation failed",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lessonID))
		return nil, fmt.Errorf("generate lesson %s: %w", lessonID, err)
	}

	draft := ParseLessonDraft(req.Topic, raw)
	span.SetAttributes(attribute.String("lesson.draft_source", draft.Source.String()))
	if draft.Source == DraftFallback {
		log.Warn("generator output was not a JSON object, using fallback lesson",
			slog.String("lesson_id", lessonID),
			slog.Int("response_length", len(raw)))
	}

	now := s.now()
	lesson = &domain.Lesson{
		ID:              lessonID,
		ModuleID:        req.ModuleID,
		Title:           draft.Title,
		Content:         draft.Content,
		DurationMinutes: GeneratedLessonDuration,
		Examples:        []map[string]any{},
		QuizQuestions:   []map[string]any{},
		DailyTip:        draft.DailyTip,
		KeyPoints:       draft.KeyPoints,
		RealExample:     draft.RealExample,
		Order:           GeneratedLessonOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.lessons.Upsert(ctx, lesson); err != nil {
		return nil, newServiceError("lesson", "generate_lesson", "failed to store generated lesson", err)
	}

	log.Info("lesson generated",
		slog.String("lesson_id", lessonID),
		slog.String("draft_source", draft.Source.String()))
	return lesson, nil
}
