package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrQuestionNotFound, ErrUserNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same login ID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrQuestionNotFound indicates that the requested question does not
	// exist in the store, or has been soft-deleted.
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)

	// ErrReplyNotFound indicates that the requested reply does not exist in
	// the store, or has been soft-deleted.
	ErrReplyNotFound = fmt.Errorf("%w: reply", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrLoginIDExists indicates that a user with the given login ID already
	// exists. Returned when saving a user whose login handle is taken.
	ErrLoginIDExists = fmt.Errorf("%w: login ID", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError reports a failure of the backing store itself (I/O, constraint
// violation, connectivity) as opposed to a domain condition like absence.
// It always carries the entity, the operation that failed, and the original
// driver error for diagnostics.
type StoreError struct {
	Entity    string // The entity type (e.g., "question", "user")
	Operation string // The operation that failed (e.g., "save", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsStoreError checks if the error is a StoreError, i.e. a persistence-layer
// failure rather than a domain condition. Callers can branch on this to
// decide retry vs. abort.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
