package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyTitle is returned when a question is created without a title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyWriter is returned when a question or reply has no writer name.
	ErrEmptyWriter = errors.New("writer cannot be empty")

	// ErrEmptyLoginID is returned when a user is created without a login handle.
	ErrEmptyLoginID = errors.New("login ID cannot be empty")

	// ErrEmptyPassword is returned when a user is created without a password.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
