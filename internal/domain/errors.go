// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidMaxLen is returned when a chunk size bound is not positive.
	ErrInvalidMaxLen = errors.New("invalid max length")

	// ErrEmptyQuestion is returned when a flashcard has no question.
	ErrEmptyQuestion = errors.New("flashcard question cannot be empty")

	// ErrEmptyAnswer is returned when a flashcard has no answer.
	ErrEmptyAnswer = errors.New("flashcard answer cannot be empty")
)
