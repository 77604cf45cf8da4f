package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultMaxLen is the chunk size bound used when a caller does not choose one.
const DefaultMaxLen = 400

// GenerationRequest pairs a document with the chunk size bound used to split it.
type GenerationRequest struct {
	ID     uuid.UUID `json:"id"`
	Text   string    `json:"text"`
	MaxLen int       `json:"max_len"`
}

// NewGenerationRequest creates a request with a fresh ID. A zero maxLen is
// replaced by DefaultMaxLen; a negative one fails validation.
func NewGenerationRequest(text string, maxLen int) (*GenerationRequest, error) {
	if maxLen == 0 {
		maxLen = DefaultMaxLen
	}

	req := &GenerationRequest{
		ID:     uuid.New(),
		Text:   text,
		MaxLen: maxLen,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks the request's chunk size bound.
func (r *GenerationRequest) Validate() error {
	if r.ID == uuid.Nil {
		return ErrInvalidID
	}

	if r.MaxLen <= 0 {
		return fmt.Errorf("%w: max_len must be positive, got %d", ErrInvalidMaxLen, r.MaxLen)
	}

	return nil
}
