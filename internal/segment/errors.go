package segment

import (
	"errors"
	"fmt"

	"github.com/phrazzld/scry-flashgen/internal/domain"
)

// Errors returned by the segment package. Both specific errors wrap
// ErrSegmentation so callers can treat any of them as a request-level failure.
var (
	// ErrSegmentation is the common parent of all segmentation failures.
	ErrSegmentation = errors.New("segmentation failed")

	// ErrInvalidMaxLen is returned when the chunk size bound is not positive.
	ErrInvalidMaxLen = fmt.Errorf("%w: %w", ErrSegmentation, domain.ErrInvalidMaxLen)

	// ErrTokenizerUnavailable is returned when no sentence tokenizer could be loaded.
	ErrTokenizerUnavailable = fmt.Errorf("%w: sentence tokenizer unavailable", ErrSegmentation)
)
