package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/finstart-api/internal/api/shared"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
	"github.com/phrazzld/finstart-api/internal/service"
)

// LessonHandler handles lesson-related HTTP requests.
type LessonHandler struct {
	lessonService service.LessonService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonService service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// ListModuleLessons handles GET /api/modules/{module_id}/lessons requests.
// An unknown module yields an empty list.
func (h *LessonHandler) ListModuleLessons(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := requirePathParam(w, r, "module_id")
	if !ok {
		return
	}

	lessons, err := h.lessonService.ListLessons(r.Context(), moduleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lessonsToResponse(lessons))
}

// GetLesson handles GET /api/lessons/{lesson_id} requests.
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := requirePathParam(w, r, "lesson_id")
	if !ok {
		return
	}

	lesson, err := h.lessonService.GetLesson(r.Context(), lessonID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lessonToResponse(lesson))
}

// GenerateLesson handles POST /api/lessons/generate requests.
func (h *LessonHandler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GenerateLessonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lesson, err := h.lessonService.GenerateLesson(r.Context(), service.GenerateLessonRequest{
		ModuleID:   req.ModuleID,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("lesson generated",
		slog.String("lesson_id", lesson.ID),
		slog.String("module_id", lesson.ModuleID))
	shared.RespondWithJSON(w, r, http.StatusOK, lessonToResponse(lesson))
}
