package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/finstart-api/internal/api/middleware"
	"github.com/phrazzld/finstart-api/internal/platform/logger"
)

const testDefaultUser = "default_user"

type testHandlers struct {
	lessons     *MockLessonService
	progress    *MockProgressService
	simulations *MockSimulationService
	router      http.Handler
}

// newTestHandlers mounts every handler behind the trace and user middleware,
// with routes matching the server's.
func newTestHandlers() *testHandlers {
	h := &testHandlers{
		lessons:     &MockLessonService{},
		progress:    &MockProgressService{},
		simulations: &MockSimulationService{},
	}

	log, _ := logger.NewTestLogger()
	catalogHandler := NewCatalogHandler()
	lessonHandler := NewLessonHandler(h.lessons)
	progressHandler := NewProgressHandler(h.progress)
	simulationHandler := NewSimulationHandler(h.simulations)

	r := chi.NewRouter()
	r.Use(middleware.Trace(log))
	r.Use(middleware.UserID(testDefaultUser))
	r.Route("/api", func(r chi.Router) {
		r.Get("/", catalogHandler.Welcome)
		r.Get("/modules", catalogHandler.ListModules)
		r.Get("/modules/{module_id}/lessons", lessonHandler.ListModuleLessons)
		r.Get("/lessons/{lesson_id}", lessonHandler.GetLesson)
		r.Post("/lessons/generate", lessonHandler.GenerateLesson)
		r.Get("/progress", progressHandler.GetProgress)
		r.Post("/progress/complete-lesson/{lesson_id}", progressHandler.CompleteLesson)
		r.Post("/quiz/submit", progressHandler.SubmitQuiz)
		r.Post("/simulations/calculate", simulationHandler.Calculate)
		r.Get("/scenarios/{scenario_type}", catalogHandler.GetScenario)
	})
	h.router = r
	return h
}

func (h *testHandlers) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return body
}
