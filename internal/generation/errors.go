package generation

import "errors"

// Common errors returned by the generation package. Any of them on a chunk
// causes the assembler to emit a fallback card for that chunk.
var (
	// ErrGenerationFailed is returned when a model invocation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrInvalidResponse is returned when the model response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyOutput is returned when the model produced only whitespace
	ErrEmptyOutput = errors.New("language model returned empty output")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTimeout is returned when a model invocation exceeds its time budget
	ErrTimeout = errors.New("language model invocation timed out")

	// ErrModelUnavailable is returned when a model could not be initialized
	ErrModelUnavailable = errors.New("language model unavailable")

	// ErrInvalidConfig is returned when the model configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyInput is returned when there is no text to build a prompt from
	ErrEmptyInput = errors.New("input text cannot be empty")
)
