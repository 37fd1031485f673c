// Package service provides the business-rule layer on top of the stores.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers branch on these with errors.Is; the API layer maps them to HTTP
// status codes. Store-level errors (not found, persistence failures) pass
// through unchanged so callers can still branch on them.
var (
	// ErrWrongPassword indicates that the password supplied for a guarded
	// user update did not match the stored one. No mutation has occurred
	// when this is returned, and the message reveals nothing about the
	// other supplied fields.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotOwned indicates a question is owned by a different user than the
	// one attempting to modify it.
	ErrNotOwned = errors.New("question is owned by another user")
)
