// Package sqlite provides SQLite implementations of the store interfaces
// using the pure-Go modernc.org/sqlite driver.
//
// It is the embedded alternative to the postgres package for local use and
// single-node deployments. The schema mirrors the PostgreSQL one: list and map
// fields are JSON text manipulated with the json1 functions, and timestamps
// are stored as Unix milliseconds.
package sqlite
