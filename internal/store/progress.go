package store

import (
	"context"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
)

// ProgressStore defines the interface for user progress persistence.
//
// Every mutating method is a single atomic statement that creates the record
// when it does not exist yet, so concurrent calls for the same user cannot
// lose updates.
type ProgressStore interface {
	// GetOrCreate returns the user's progress, persisting an empty record
	// first when none exists.
	GetOrCreate(ctx context.Context, userID string, now time.Time) (*domain.UserProgress, error)

	// AddCompletedLesson adds lessonID to the completed set if it is not
	// already present and sets last_active to at.
	AddCompletedLesson(ctx context.Context, userID, lessonID string, at time.Time) error

	// SetQuizScore overwrites the user's score for lessonID and sets
	// last_active to at.
	SetQuizScore(ctx context.Context, userID, lessonID string, score float64, at time.Time) error

	// AddCompletedSimulation adds kind to the completed simulations set if it
	// is not already present and sets last_active to at.
	AddCompletedSimulation(ctx context.Context, userID, kind string, at time.Time) error
}
