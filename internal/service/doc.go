// Package service contains the application use cases of the API. It
// orchestrates the simulation engine, the lesson generator and the stores
// (defined in internal/store) to fulfill each endpoint.
//
// Key components:
//
//  1. LessonService: lesson lookup and AI lesson generation with a fallback
//     for malformed model output.
//  2. ProgressService: lazy per-user progress records with idempotent lesson
//     completion and quiz score recording.
//  3. SimulationService: boundary decoding of calculator inputs, the engine
//     call, and the append-only history log.
//
// Services receive their dependencies through constructor injection and
// depend only on interfaces, never on a specific storage or LLM provider.
// Expected conditions are reported as sentinel errors that the API layer maps
// to HTTP status codes with errors.Is.
package service
