package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyLessonID is returned when a lesson has no id.
	ErrEmptyLessonID = errors.New("lesson ID cannot be empty")

	// ErrEmptyModuleID is returned when a lesson does not reference a module.
	ErrEmptyModuleID = errors.New("module ID cannot be empty")

	// ErrInvalidDuration is returned when a lesson duration is negative.
	ErrInvalidDuration = errors.New("lesson duration cannot be negative")

	// ErrEmptyUserID is returned when a user-scoped record has no user id.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptySimulationType is returned when a history record has no kind.
	ErrEmptySimulationType = errors.New("simulation type cannot be empty")

	// ErrInvalidPayload is returned when stored inputs or outputs are not
	// valid JSON.
	ErrInvalidPayload = errors.New("payload must be valid JSON")
)
