package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/phrazzld/finstart-api/internal/domain"
)

// LessonRecord is the column form of a domain.Lesson shared by the SQL
// implementations. List-valued fields are JSON documents.
type LessonRecord struct {
	ID              string
	ModuleID        string
	Title           string
	Content         string
	DurationMinutes int
	Examples        []byte
	QuizQuestions   []byte
	SimulationType  sql.NullString
	DailyTip        string
	KeyPoints       []byte
	RealExample     string
	Position        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewLessonRecord encodes lesson into its column form. Nil lists are stored
// as empty JSON arrays and a zero CreatedAt or UpdatedAt is replaced by now.
func NewLessonRecord(lesson *domain.Lesson, now time.Time) (*LessonRecord, error) {
	l := *lesson
	l.Normalize()

	examples, err := json.Marshal(l.Examples)
	if err != nil {
		return nil, fmt.Errorf("%w: encode examples: %v", ErrInvalidEntity, err)
	}
	quiz, err := json.Marshal(l.QuizQuestions)
	if err != nil {
		return nil, fmt.Errorf("%w: encode quiz questions: %v", ErrInvalidEntity, err)
	}
	keyPoints, err := json.Marshal(l.KeyPoints)
	if err != nil {
		return nil, fmt.Errorf("%w: encode key points: %v", ErrInvalidEntity, err)
	}

	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := l.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	return &LessonRecord{
		ID:              l.ID,
		ModuleID:        l.ModuleID,
		Title:           l.Title,
		Content:         l.Content,
		DurationMinutes: l.DurationMinutes,
		Examples:        examples,
		QuizQuestions:   quiz,
		SimulationType:  sql.NullString{String: l.SimulationType, Valid: l.SimulationType != ""},
		DailyTip:        l.DailyTip,
		KeyPoints:       keyPoints,
		RealExample:     l.RealExample,
		Position:        l.Order,
		CreatedAt:       createdAt.UTC(),
		UpdatedAt:       updatedAt.UTC(),
	}, nil
}

// ToDomain decodes the record into a domain.Lesson.
// Malformed JSON columns yield ErrInternal.
func (r *LessonRecord) ToDomain() (*domain.Lesson, error) {
	lesson := &domain.Lesson{
		ID:              r.ID,
		ModuleID:        r.ModuleID,
		Title:           r.Title,
		Content:         r.Content,
		DurationMinutes: r.DurationMinutes,
		SimulationType:  r.SimulationType.String,
		DailyTip:        r.DailyTip,
		RealExample:     r.RealExample,
		Order:           r.Position,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}

	if err := decodeColumn(r.Examples, &lesson.Examples); err != nil {
		return nil, fmt.Errorf("%w: decode examples of lesson %s: %v", ErrInternal, r.ID, err)
	}
	if err := decodeColumn(r.QuizQuestions, &lesson.QuizQuestions); err != nil {
		return nil, fmt.Errorf("%w: decode quiz questions of lesson %s: %v", ErrInternal, r.ID, err)
	}
	if err := decodeColumn(r.KeyPoints, &lesson.KeyPoints); err != nil {
		return nil, fmt.Errorf("%w: decode key points of lesson %s: %v", ErrInternal, r.ID, err)
	}

	lesson.Normalize()
	return lesson, nil
}

// ProgressRecord is the column form of a domain.UserProgress.
type ProgressRecord struct {
	UserID               string
	CompletedLessons     []byte
	QuizScores           []byte
	SimulationsCompleted []byte
	LastActive           time.Time
}

// ToDomain decodes the record into a domain.UserProgress.
func (r *ProgressRecord) ToDomain() (*domain.UserProgress, error) {
	p := &domain.UserProgress{
		UserID:     r.UserID,
		LastActive: r.LastActive.UTC(),
	}

	if err := decodeColumn(r.CompletedLessons, &p.CompletedLessons); err != nil {
		return nil, fmt.Errorf("%w: decode completed lessons of %s: %v", ErrInternal, r.UserID, err)
	}
	if err := decodeColumn(r.QuizScores, &p.QuizScores); err != nil {
		return nil, fmt.Errorf("%w: decode quiz scores of %s: %v", ErrInternal, r.UserID, err)
	}
	if err := decodeColumn(r.SimulationsCompleted, &p.SimulationsCompleted); err != nil {
		return nil, fmt.Errorf("%w: decode completed simulations of %s: %v", ErrInternal, r.UserID, err)
	}

	p.Normalize()
	return p, nil
}

// decodeColumn unmarshals a JSON column. Empty and NULL columns leave v untouched.
func decodeColumn(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
