package flashcard

import "errors"

var (
	// ErrCancelled is returned when the caller's context ends before every
	// chunk has been processed.
	ErrCancelled = errors.New("flashcard generation cancelled")

	// errChunkPanic marks a chunk whose generation panicked.
	errChunkPanic = errors.New("chunk generation panicked")
)
