package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/finstart-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior.
	GenerateFn func(ctx context.Context, req generation.Request) (string, error)

	// Default response values, used when GenerateFn is nil.
	Text string
	Err  error

	// GenerateCalls tracks calls for verification.
	GenerateCalls struct {
		mu       sync.Mutex
		Count    int
		Requests []generation.Request
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements generation.Generator.
func (m *MockGenerator) Generate(ctx context.Context, req generation.Request) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Requests = append(m.GenerateCalls.Requests, req)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Text, m.Err
}

// NewMockGeneratorWithText creates a MockGenerator that returns text.
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns err.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// LastRequest returns the most recent request, or the zero Request.
func (m *MockGenerator) LastRequest() generation.Request {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	if len(m.GenerateCalls.Requests) == 0 {
		return generation.Request{}
	}
	return m.GenerateCalls.Requests[len(m.GenerateCalls.Requests)-1]
}
