package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/finstart-api/internal/api/shared"
	"github.com/phrazzld/finstart-api/internal/domain/simulation"
	"github.com/phrazzld/finstart-api/internal/generation"
	"github.com/phrazzld/finstart-api/internal/service"
	"github.com/phrazzld/finstart-api/internal/store"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrLessonNotFound):
		return http.StatusNotFound

	case errors.Is(err, generation.ErrUnconfigured):
		return http.StatusServiceUnavailable

	case generation.IsUpstreamFailure(err):
		return http.StatusBadGateway

	case errors.Is(err, simulation.ErrInvalidKind),
		errors.Is(err, simulation.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, shared.ErrEmptyBody),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Storage and
// other unexpected failures get a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}

	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrLessonNotFound):
		return "Lesson not found"

	case errors.Is(err, generation.ErrUnconfigured):
		return "Lesson generation is not configured"

	case generation.IsUpstreamFailure(err):
		return "Failed to generate lesson"

	case errors.Is(err, simulation.ErrInvalidKind):
		return "Unknown simulation type"

	case errors.Is(err, simulation.ErrInvalidInput):
		prefix := simulation.ErrInvalidInput.Error() + ": "
		if detail, ok := strings.CutPrefix(err.Error(), prefix); ok && detail != "" {
			return "Invalid simulation input: " + detail
		}
		return "Invalid simulation input"

	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, service.ErrInvalidRequest):
		return "Invalid request"

	default:
		return unexpectedErrorMessage
	}
}

// SanitizeValidationError turns the first failed field of a validation error
// into a message such as "Invalid lesson_id: required field".
func SanitizeValidationError(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	if tag := fe.Tag(); tag != "" {
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), validationTagMessage(tag))
	}
	return fmt.Sprintf("Invalid %s", fe.Field())
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte", "lte":
		return "out of range"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err, logging the
// redacted detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
