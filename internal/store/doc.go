// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. The PostgreSQL and SQLite packages under
// internal/platform implement them with identical semantics.
package store
