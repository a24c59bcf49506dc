package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/generation"
	"github.com/phrazzld/finstart-api/internal/mocks"
	"github.com/phrazzld/finstart-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestLessonService(
	t *testing.T,
	lessons *mocks.MockLessonStore,
	gen *mocks.MockGenerator,
) *lessonServiceImpl {
	t.Helper()

	prompts, err := generation.NewPromptBuilder("")
	require.NoError(t, err)

	svc, err := NewLessonService(lessons, gen, prompts, nil)
	require.NoError(t, err)

	impl := svc.(*lessonServiceImpl)
	impl.now = func() time.Time { return fixedNow }
	return impl
}

func TestNewLessonService_NilDependencies(t *testing.T) {
	t.Parallel()

	prompts, err := generation.NewPromptBuilder("")
	require.NoError(t, err)

	_, err = NewLessonService(nil, &mocks.MockGenerator{}, prompts, nil)
	assert.Error(t, err)
	_, err = NewLessonService(&mocks.MockLessonStore{}, nil, prompts, nil)
	assert.Error(t, err)
	_, err = NewLessonService(&mocks.MockLessonStore{}, &mocks.MockGenerator{}, nil, nil)
	assert.Error(t, err)
}

func TestLessonID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		moduleID, topic, want string
	}{
		{"money-basics", "Emergency Fund", "money-basics_emergency_fund"},
		{"investing", "SIP  vs Lumpsum", "investing_sip__vs_lumpsum"},
		{"taxes-legal", "ÉLSS Funds", "taxes-legal_élss_funds"},
		{"Money-Basics", "x", "Money-Basics_x"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LessonID(tt.moduleID, tt.topic))
	}
}

func TestLessonService_GetLesson(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		want := &domain.Lesson{ID: "l1", ModuleID: "m"}
		svc := newTestLessonService(t, &mocks.MockLessonStore{
			GetFn: func(context.Context, string) (*domain.Lesson, error) { return want, nil },
		}, &mocks.MockGenerator{})

		got, err := svc.GetLesson(context.Background(), "l1")
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc := newTestLessonService(t, &mocks.MockLessonStore{}, &mocks.MockGenerator{})

		_, err := svc.GetLesson(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrLessonNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection reset")
		svc := newTestLessonService(t, &mocks.MockLessonStore{
			GetFn: func(context.Context, string) (*domain.Lesson, error) { return nil, boom },
		}, &mocks.MockGenerator{})

		_, err := svc.GetLesson(context.Background(), "l1")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrLessonNotFound)
		var svcErr *ServiceError
		assert.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "get_lesson", svcErr.Operation)
	})
}

func TestLessonService_ListLessons(t *testing.T) {
	t.Parallel()

	var gotModule string
	svc := newTestLessonService(t, &mocks.MockLessonStore{
		ListByModuleFn: func(_ context.Context, moduleID string) ([]*domain.Lesson, error) {
			gotModule = moduleID
			return []*domain.Lesson{{ID: "a"}, {ID: "b"}}, nil
		},
	}, &mocks.MockGenerator{})

	lessons, err := svc.ListLessons(context.Background(), "budgeting")
	require.NoError(t, err)
	assert.Len(t, lessons, 2)
	assert.Equal(t, "budgeting", gotModule)
}

func TestLessonService_GenerateLesson(t *testing.T) {
	t.Parallel()

	lessons := &mocks.MockLessonStore{}
	gen := mocks.NewMockGeneratorWithText(`{"title": "Build an Emergency Fund", "content": "Three to six months.",
		"key_points": ["Start small"], "real_example": "Arjun's bike repair.", "daily_tip": "Save ₹100 today."}`)
	svc := newTestLessonService(t, lessons, gen)

	lesson, err := svc.GenerateLesson(context.Background(), GenerateLessonRequest{
		ModuleID: "money-basics",
		Topic:    "Emergency Fund",
	})
	require.NoError(t, err)

	assert.Equal(t, "money-basics_emergency_fund", lesson.ID)
	assert.Equal(t, "money-basics", lesson.ModuleID)
	assert.Equal(t, "Build an Emergency Fund", lesson.Title)
	assert.Equal(t, "Three to six months.", lesson.Content)
	assert.Equal(t, []string{"Start small"}, lesson.KeyPoints)
	assert.Equal(t, "Arjun's bike repair.", lesson.RealExample)
	assert.Equal(t, "Save ₹100 today.", lesson.DailyTip)
	assert.Equal(t, 3, lesson.DurationMinutes)
	assert.Equal(t, 1, lesson.Order)
	assert.Empty(t, lesson.QuizQuestions)
	assert.NotNil(t, lesson.QuizQuestions)
	assert.Empty(t, lesson.Examples)
	assert.Equal(t, fixedNow, lesson.CreatedAt)

	require.Len(t, lessons.Upserted, 1)
	assert.Same(t, lesson, lessons.Upserted[0])

	req := gen.LastRequest()
	assert.Equal(t, "lesson_Emergency Fund", req.SessionID)
	assert.Equal(t, "beginner", req.Difficulty)
	assert.Equal(t, generation.LessonSystemPrompt, req.SystemPrompt)
	assert.Contains(t, req.Prompt, "Difficulty level: beginner")
}

func TestLessonService_GenerateLessonFallback(t *testing.T) {
	t.Parallel()

	lessons := &mocks.MockLessonStore{}
	svc := newTestLessonService(t, lessons, mocks.NewMockGeneratorWithText("Just some prose about budgets."))

	lesson, err := svc.GenerateLesson(context.Background(), GenerateLessonRequest{
		ModuleID:   "budgeting",
		Topic:      "50/30/20 Rule",
		Difficulty: "intermediate",
	})
	require.NoError(t, err)

	assert.Equal(t, "budgeting_50/30/20_rule", lesson.ID)
	assert.Equal(t, "50/30/20 Rule", lesson.Title)
	assert.Equal(t, "Just some prose about budgets.", lesson.Content)
	assert.Equal(t, []string{"Understand the basics", "Apply in real life", "Track progress"}, lesson.KeyPoints)
	assert.Equal(t, "Start small and stay consistent.", lesson.DailyTip)
	require.Len(t, lessons.Upserted, 1)
}

func TestLessonService_GenerateLessonErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     GenerateLessonRequest
		gen     *mocks.MockGenerator
		upsert  error
		wantErr error
		upserts int
	}{
		{
			name:    "missing topic",
			req:     GenerateLessonRequest{ModuleID: "m"},
			gen:     &mocks.MockGenerator{},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "missing module",
			req:     GenerateLessonRequest{Topic: "t"},
			gen:     &mocks.MockGenerator{},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "unconfigured generator",
			req:     GenerateLessonRequest{ModuleID: "m", Topic: "t"},
			gen:     mocks.NewMockGeneratorWithError(generation.ErrUnconfigured),
			wantErr: generation.ErrUnconfigured,
		},
		{
			name:    "upstream failure",
			req:     GenerateLessonRequest{ModuleID: "m", Topic: "t"},
			gen:     mocks.NewMockGeneratorWithError(generation.ErrGenerationFailed),
			wantErr: generation.ErrGenerationFailed,
		},
		{
			name:    "store failure",
			req:     GenerateLessonRequest{ModuleID: "m", Topic: "t"},
			gen:     mocks.NewMockGeneratorWithText(`{}`),
			upsert:  store.ErrInternal,
			wantErr: store.ErrInternal,
			upserts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lessons := &mocks.MockLessonStore{
				UpsertFn: func(context.Context, *domain.Lesson) error { return tt.upsert },
			}
			svc := newTestLessonService(t, lessons, tt.gen)

			_, err := svc.GenerateLesson(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, lessons.Upserted, tt.upserts)
		})
	}
}

func TestLessonService_GenerateLessonSpan(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	svc := newTestLessonService(t, &mocks.MockLessonStore{}, mocks.NewMockGeneratorWithText("plain"))
	svc.tracer = tp.Tracer("test")

	_, err := svc.GenerateLesson(context.Background(), GenerateLessonRequest{ModuleID: "m", Topic: "Topic"})
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "LessonService.GenerateLesson", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, attribute.String("lesson.id", "m_topic"))
	assert.Contains(t, spans[0].Attributes, attribute.String("lesson.draft_source", "fallback"))
}
