package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/finstart-api/internal/domain"
)

// LessonStore defines the interface for lesson data persistence.
type LessonStore interface {
	// Get retrieves a lesson by its id.
	// Returns ErrLessonNotFound if the lesson does not exist.
	Get(ctx context.Context, id string) (*domain.Lesson, error)

	// ListByModule retrieves every lesson of a module ordered by the lesson's
	// order field and then by id.
	// Returns an empty slice if the module has no lessons.
	ListByModule(ctx context.Context, moduleID string) ([]*domain.Lesson, error)

	// Upsert inserts the lesson or replaces the stored lesson with the same id.
	// The first CreatedAt written for an id is preserved; UpdatedAt is taken
	// from the lesson being written.
	// Returns validation errors from the domain Lesson if data is invalid.
	Upsert(ctx context.Context, lesson *domain.Lesson) error

	// WithTx returns a new LessonStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) LessonStore
}
