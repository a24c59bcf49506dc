package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrLessonNotFound",
			err:      ErrLessonNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrLessonNotFound",
			err:      fmt.Errorf("failed to get lesson: %w", ErrLessonNotFound),
			expected: true,
		},
		{
			name:     "ErrProgressNotFound",
			err:      ErrProgressNotFound,
			expected: true,
		},
		{
			name:     "StoreError wrapping ErrLessonNotFound",
			err:      NewStoreError("lesson", "get", "lookup failed", ErrLessonNotFound),
			expected: true,
		},
		{
			name:     "ErrDuplicate",
			err:      ErrDuplicate,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, IsDuplicateError(nil))
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrNotFound))
}

func TestIsInternalError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil_error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic_error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrInternal",
			err:      ErrInternal,
			expected: true,
		},
		{
			name:     "wrapped_ErrInternal",
			err:      fmt.Errorf("failed to process: %w", ErrInternal),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInternalError(tt.err))
		})
	}
}

func TestErrLessonNotFoundMessage(t *testing.T) {
	assert.Equal(t, "entity not found: lesson", ErrLessonNotFound.Error())
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewStoreError("progress", "add_completed_lesson", "update failed", cause)

		assert.Equal(t,
			"add_completed_lesson operation on progress failed: update failed: connection reset",
			err.Error())
		assert.ErrorIs(t, err, cause)

		var storeErr *StoreError
		assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &storeErr))
		assert.Equal(t, "progress", storeErr.Entity)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := &StoreError{
			Entity:    "lesson",
			Operation: "upsert",
			Message:   "no rows affected",
		}

		assert.Equal(t, "upsert operation on lesson failed: no rows affected", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
