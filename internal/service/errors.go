package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/finstart-api/internal/store"
)

// Common service errors. Callers check them with errors.Is; the API layer
// maps them to HTTP status codes.
var (
	// ErrLessonNotFound indicates the requested lesson does not exist.
	// It wraps store.ErrLessonNotFound. API layer maps it to 404.
	ErrLessonNotFound = fmt.Errorf("service: %w", store.ErrLessonNotFound)

	// ErrInvalidRequest indicates a request is missing required fields.
	// API layer maps it to 400.
	ErrInvalidRequest = errors.New("invalid request")
)

// ServiceError wraps unexpected failures from a service operation with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "lesson", "progress").
	Service string
	// Operation is the operation that failed (e.g., "generate_lesson").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps err with operation context. Lesson not found errors
// from the store are returned as ErrLessonNotFound without wrapping.
func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrLessonNotFound) {
		return ErrLessonNotFound
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
