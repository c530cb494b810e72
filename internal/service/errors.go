// Package service implements the FitSync domain services. Every operation
// follows the same shape: read the current document, locate the records it
// owns, mutate them in memory, and save the whole document back through the
// repository. Failures are surfaced as the sentinel errors below (or
// repository.ErrDataNotLoaded / wrapped persistence errors) so callers can
// tell the conditions apart.
package service

import "errors"

var (
	// ErrNotAuthenticated means no current user exists for an operation
	// that requires one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound means a referenced record id is absent from the document.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers login failures; it deliberately does not
	// distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailExists rejects registration with an already-registered email.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidInput rejects malformed arguments before any mutation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState rejects session status transitions outside
	// in-progress → paused → in-progress → completed.
	ErrInvalidState = errors.New("invalid session state")
)
