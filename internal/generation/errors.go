package generation

import "errors"

// Common errors returned by the generation package and its implementations.
var (
	// ErrUnconfigured is returned when no generation provider is set up.
	ErrUnconfigured = errors.New("lesson generation is not configured")

	// ErrGenerationFailed is returned when the upstream call fails for any general reason.
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidResponse is returned when the provider response is empty or malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the provider blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// IsUpstreamFailure reports whether err came from a provider call rather than
// from local configuration.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrGenerationFailed) ||
		errors.Is(err, ErrInvalidResponse) ||
		errors.Is(err, ErrContentBlocked)
}
