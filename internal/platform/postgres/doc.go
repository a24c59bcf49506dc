// Package postgres provides PostgreSQL implementations of the lesson,
// progress and simulation history stores defined in internal/store.
//
// List and map fields are stored as JSONB. Progress mutations are single
// INSERT ... ON CONFLICT DO UPDATE statements so they are atomic per user.
// The schema is managed by goose migrations embedded in the package.
package postgres
