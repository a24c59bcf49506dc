// Package mocks provides centralized mock implementations for testing.
//
// Each mock carries one function field per interface method. A nil function
// field falls back to a zero-value success, so tests only wire the behavior
// they care about:
//
//	lessons := &mocks.MockLessonStore{
//	    GetFn: func(ctx context.Context, id string) (*domain.Lesson, error) {
//	        return nil, store.ErrLessonNotFound
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Add a compile-time interface assertion
package mocks
