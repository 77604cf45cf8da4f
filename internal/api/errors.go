package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/flashcard"
	"github.com/phrazzld/scry-flashgen/internal/segment"
)

// statusClientClosedRequest is the de facto status for a request abandoned
// by its client.
const statusClientClosedRequest = 499

// MapErrorToStatusCode maps pipeline errors to HTTP status codes.
// Segmentation and validation failures are the caller's fault; everything
// else is a server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, segment.ErrSegmentation),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidMaxLen):
		return http.StatusBadRequest
	case errors.Is(err, flashcard.ErrCancelled):
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, segment.ErrTokenizerUnavailable):
		return "Text could not be split into sentences"
	case errors.Is(err, domain.ErrInvalidMaxLen):
		return "max_len must be a positive number of characters"
	case errors.Is(err, segment.ErrSegmentation),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	case errors.Is(err, flashcard.ErrCancelled):
		return "Request cancelled"
	default:
		return "Failed to generate flashcards"
	}
}
