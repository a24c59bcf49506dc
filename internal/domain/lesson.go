package domain

import (
	"fmt"
	"time"
)

// Lesson is a unit of study content belonging to a curriculum module.
//
// Lessons are keyed by ID and written with upsert semantics: storing a lesson
// with an existing ID replaces the previous record.
type Lesson struct {
	ID              string           `json:"id" yaml:"id"`
	ModuleID        string           `json:"module_id" yaml:"module_id"`
	Title           string           `json:"title" yaml:"title"`
	Content         string           `json:"content" yaml:"content"`
	DurationMinutes int              `json:"duration_minutes" yaml:"duration_minutes"`
	Examples        []map[string]any `json:"examples" yaml:"examples"`
	QuizQuestions   []map[string]any `json:"quiz_questions" yaml:"quiz_questions"`
	SimulationType  string           `json:"simulation_type,omitempty" yaml:"simulation_type"`
	DailyTip        string           `json:"daily_tip" yaml:"daily_tip"`
	KeyPoints       []string         `json:"key_points" yaml:"key_points"`
	RealExample     string           `json:"real_example" yaml:"real_example"`
	Order           int              `json:"order" yaml:"order"`
	CreatedAt       time.Time        `json:"created_at" yaml:"-"`
	UpdatedAt       time.Time        `json:"updated_at" yaml:"-"`
}

// Validate checks if the Lesson has valid data.
// Returns an error if any field fails validation.
func (l *Lesson) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyLessonID)
	}

	if l.ModuleID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyModuleID)
	}

	if l.DurationMinutes < 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidDuration)
	}

	return nil
}

// Normalize replaces nil collections with empty ones so the lesson always
// serializes lists as [] rather than null.
func (l *Lesson) Normalize() {
	if l.Examples == nil {
		l.Examples = []map[string]any{}
	}
	if l.QuizQuestions == nil {
		l.QuizQuestions = []map[string]any{}
	}
	if l.KeyPoints == nil {
		l.KeyPoints = []string{}
	}
}
