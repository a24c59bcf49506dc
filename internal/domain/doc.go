// Package domain contains the core business entities of the application:
// lessons, per-user progress and simulation history records. It is
// independent of any storage or delivery mechanism.
package domain
