// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP calls onto the lesson, progress and
// simulation services and the static catalog.
package api
