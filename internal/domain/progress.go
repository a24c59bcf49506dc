package domain

import (
	"fmt"
	"slices"
	"time"
)

// UserProgress tracks what a single user has completed.
//
// CompletedLessons and SimulationsCompleted behave as sets that keep
// insertion order. QuizScores keeps only the most recent score per lesson.
type UserProgress struct {
	UserID               string             `json:"user_id"`
	CompletedLessons     []string           `json:"completed_lessons"`
	QuizScores           map[string]float64 `json:"quiz_scores"`
	SimulationsCompleted []string           `json:"simulations_completed"`
	LastActive           time.Time          `json:"last_active"`
}

// NewUserProgress creates an empty progress record for userID.
func NewUserProgress(userID string, now time.Time) (*UserProgress, error) {
	p := &UserProgress{
		UserID:               userID,
		CompletedLessons:     []string{},
		QuizScores:           map[string]float64{},
		SimulationsCompleted: []string{},
		LastActive:           now.UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the UserProgress has valid data.
func (p *UserProgress) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUserID)
	}
	return nil
}

// HasCompletedLesson reports whether lessonID is in the completed set.
func (p *UserProgress) HasCompletedLesson(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

// HasCompletedSimulation reports whether kind is in the completed set.
func (p *UserProgress) HasCompletedSimulation(kind string) bool {
	return slices.Contains(p.SimulationsCompleted, kind)
}

// Normalize replaces nil collections with empty ones.
func (p *UserProgress) Normalize() {
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	if p.QuizScores == nil {
		p.QuizScores = map[string]float64{}
	}
	if p.SimulationsCompleted == nil {
		p.SimulationsCompleted = []string{}
	}
}
