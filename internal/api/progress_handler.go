package api

import (
	"net/http"

	"github.com/phrazzld/finstart-api/internal/api/shared"
	"github.com/phrazzld/finstart-api/internal/service"
)

// ProgressHandler handles progress and quiz HTTP requests for the user set
// in the request context.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress handles GET /api/progress requests.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	progress, err := h.progressService.GetProgress(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(progress))
}

// CompleteLesson handles POST /api/progress/complete-lesson/{lesson_id}
// requests. The lesson id is not checked against stored lessons.
func (h *ProgressHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	lessonID, ok := requirePathParam(w, r, "lesson_id")
	if !ok {
		return
	}

	if err := h.progressService.CompleteLesson(r.Context(), userID, lessonID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompleteLessonResponse{Success: true, LessonID: lessonID})
}

// SubmitQuiz handles POST /api/quiz/submit requests.
func (h *ProgressHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req QuizSubmitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.progressService.RecordQuizScore(r.Context(), userID, req.LessonID, *req.Score); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizSubmitResponse{Score: *req.Score, LessonID: req.LessonID})
}
