package api

import (
	"encoding/json"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
)

// WelcomeMessage is returned by the API root.
const WelcomeMessage = "FinStart API - Financial Education for Young Adults"

// MessageResponse wraps a plain message.
type MessageResponse struct {
	Message string `json:"message"`
}

// GenerateLessonRequest defines the payload for lesson generation.
type GenerateLessonRequest struct {
	ModuleID   string `json:"module_id"  validate:"required"`
	Topic      string `json:"topic"      validate:"required"`
	Difficulty string `json:"difficulty"`
}

// QuizSubmitRequest defines the payload for a quiz submission. The score is
// computed by the client and stored as given.
type QuizSubmitRequest struct {
	LessonID string            `json:"lesson_id" validate:"required"`
	Answers  map[string]string `json:"answers"`
	Score    *float64          `json:"score"     validate:"required"`
}

// QuizSubmitResponse echoes the recorded score.
type QuizSubmitResponse struct {
	Score    float64 `json:"score"`
	LessonID string  `json:"lesson_id"`
}

// CompleteLessonResponse confirms a lesson completion.
type CompleteLessonResponse struct {
	Success  bool   `json:"success"`
	LessonID string `json:"lesson_id"`
}

// SimulationRequest defines the payload for running a calculator.
type SimulationRequest struct {
	SimulationType string          `json:"simulation_type" validate:"required"`
	Inputs         json.RawMessage `json:"inputs"`
}

// LessonResponse is the client view of a lesson.
type LessonResponse struct {
	ID              string           `json:"id"`
	ModuleID        string           `json:"module_id"`
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	DurationMinutes int              `json:"duration_minutes"`
	Examples        []map[string]any `json:"examples"`
	QuizQuestions   []map[string]any `json:"quiz_questions"`
	SimulationType  string           `json:"simulation_type,omitempty"`
	DailyTip        string           `json:"daily_tip"`
	KeyPoints       []string         `json:"key_points"`
	RealExample     string           `json:"real_example"`
	Order           int              `json:"order"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ProgressResponse is the client view of a user's progress.
type ProgressResponse struct {
	UserID               string             `json:"user_id"`
	CompletedLessons     []string           `json:"completed_lessons"`
	QuizScores           map[string]float64 `json:"quiz_scores"`
	SimulationsCompleted []string           `json:"simulations_completed"`
	LastActive           time.Time          `json:"last_active"`
}

func lessonToResponse(l *domain.Lesson) LessonResponse {
	l.Normalize()
	return LessonResponse{
		ID:              l.ID,
		ModuleID:        l.ModuleID,
		Title:           l.Title,
		Content:         l.Content,
		DurationMinutes: l.DurationMinutes,
		Examples:        l.Examples,
		QuizQuestions:   l.QuizQuestions,
		SimulationType:  l.SimulationType,
		DailyTip:        l.DailyTip,
		KeyPoints:       l.KeyPoints,
		RealExample:     l.RealExample,
		Order:           l.Order,
		CreatedAt:       l.CreatedAt,
	}
}

func lessonsToResponse(lessons []*domain.Lesson) []LessonResponse {
	out := make([]LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, lessonToResponse(l))
	}
	return out
}

func progressToResponse(p *domain.UserProgress) ProgressResponse {
	p.Normalize()
	return ProgressResponse{
		UserID:               p.UserID,
		CompletedLessons:     p.CompletedLessons,
		QuizScores:           p.QuizScores,
		SimulationsCompleted: p.SimulationsCompleted,
		LastActive:           p.LastActive,
	}
}
