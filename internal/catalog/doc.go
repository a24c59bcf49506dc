// Package catalog holds the static curriculum and scenario-advice tables.
//
// Everything here is constant data built at process start. Callers receive
// copies, so the tables cannot be mutated through returned values.
package catalog
