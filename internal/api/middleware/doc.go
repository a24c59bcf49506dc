// Package middleware provides the HTTP middleware that prepares the request
// context for the handlers in package api.
package middleware
