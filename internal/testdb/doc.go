// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests using it are compiled only with the integration build tag and are
// skipped when FINSTART_TEST_DB_URL is not set.
package testdb
