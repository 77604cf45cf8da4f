package gemini

import "errors"

// ErrMissingAPIKey is returned when the model is configured without credentials.
var ErrMissingAPIKey = errors.New("gemini API key cannot be empty")
