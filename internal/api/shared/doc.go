// Package shared holds request decoding, response writing and request context
// helpers used by the handlers in package api and by its middleware.
package shared
