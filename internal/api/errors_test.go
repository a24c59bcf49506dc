package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/finstart-api/internal/api/shared"
	"github.com/phrazzld/finstart-api/internal/domain/simulation"
	"github.com/phrazzld/finstart-api/internal/generation"
	"github.com/phrazzld/finstart-api/internal/service"
	"github.com/phrazzld/finstart-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCodeAndMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"nil", nil, http.StatusInternalServerError, "An unexpected error occurred"},
		{"store not found", store.ErrLessonNotFound, http.StatusNotFound, "Lesson not found"},
		{"service not found", service.ErrLessonNotFound, http.StatusNotFound, "Lesson not found"},
		{"unconfigured", generation.ErrUnconfigured, http.StatusServiceUnavailable, "Lesson generation is not configured"},
		{
			"wrapped generation failure",
			fmt.Errorf("generate lesson x: %w", generation.ErrGenerationFailed),
			http.StatusBadGateway,
			"Failed to generate lesson",
		},
		{"invalid response", generation.ErrInvalidResponse, http.StatusBadGateway, "Failed to generate lesson"},
		{"invalid kind", simulation.ErrInvalidKind, http.StatusBadRequest, "Unknown simulation type"},
		{"invalid input bare", simulation.ErrInvalidInput, http.StatusBadRequest, "Invalid simulation input"},
		{
			"invalid input detail",
			fmt.Errorf("%w: frequency must be positive", simulation.ErrInvalidInput),
			http.StatusBadRequest,
			"Invalid simulation input: frequency must be positive",
		},
		{
			"invalid request",
			fmt.Errorf("%w: module_id and topic are required", service.ErrInvalidRequest),
			http.StatusBadRequest,
			"Invalid request",
		},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest, "Request body is required"},
		{
			"storage failure with dsn",
			errors.New("dial postgres://u:p@10.0.0.1/db: refused"),
			http.StatusInternalServerError,
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMessage, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestValidationTagMessage(t *testing.T) {
	assert.Equal(t, "required field", validationTagMessage("required"))
	assert.Equal(t, "too long", validationTagMessage("max"))
	assert.Equal(t, "validation failed", validationTagMessage("email"))
}
