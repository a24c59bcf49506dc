package generation

import (
	"context"
)

// Request is a single text-generation call.
type Request struct {
	// SystemPrompt sets the model's role and tone.
	SystemPrompt string

	// Prompt is the user message.
	Prompt string

	// Difficulty is the requested lesson level, kept for logging and tracing.
	Difficulty string

	// SessionID groups related calls on the provider side where supported.
	SessionID string
}

// Generator defines the interface for producing raw text from a language model.
// Implementations must honor ctx cancellation and must not retry.
type Generator interface {
	// Generate returns the model's text for req. Failures wrap
	// ErrGenerationFailed, ErrInvalidResponse or ErrContentBlocked.
	Generate(ctx context.Context, req Request) (string, error)
}

type unconfigured struct{}

// NewUnconfigured returns a Generator whose every call fails with ErrUnconfigured.
func NewUnconfigured() Generator {
	return unconfigured{}
}

func (unconfigured) Generate(context.Context, Request) (string, error) {
	return "", ErrUnconfigured
}
