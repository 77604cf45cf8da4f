package flashcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-flashgen/internal/domain"
)

// Generator is the request-level flashcard operation consumed by the HTTP and
// CLI surfaces.
type Generator interface {
	GenerateFlashcards(ctx context.Context, text string, maxLen int) ([]domain.Flashcard, error)
}

// Service applies request defaults and delegates to an Assembler.
type Service struct {
	assembler     *Assembler
	defaultMaxLen int
	logger        *slog.Logger
}

// NewService creates a Service. A non-positive defaultMaxLen selects
// domain.DefaultMaxLen.
func NewService(assembler *Assembler, defaultMaxLen int, logger *slog.Logger) (*Service, error) {
	if assembler == nil {
		return nil, errors.New("assembler cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if defaultMaxLen <= 0 {
		defaultMaxLen = domain.DefaultMaxLen
	}

	return &Service{
		assembler:     assembler,
		defaultMaxLen: defaultMaxLen,
		logger:        logger.With("component", "flashcard_service"),
	}, nil
}

// DefaultMaxLen returns the chunk bound used when a caller passes zero.
func (s *Service) DefaultMaxLen() int {
	return s.defaultMaxLen
}

// GenerateFlashcards turns text into flashcards. A zero maxLen selects the
// configured default; a negative one is rejected with domain.ErrInvalidMaxLen.
func (s *Service) GenerateFlashcards(ctx context.Context, text string, maxLen int) ([]domain.Flashcard, error) {
	if maxLen == 0 {
		maxLen = s.defaultMaxLen
	}

	req, err := domain.NewGenerationRequest(text, maxLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	s.logger.DebugContext(ctx, "Generating flashcards",
		"request_id", req.ID.String(),
		"text_length", len(text),
		"max_len", req.MaxLen)

	return s.assembler.AssembleRequest(ctx, req)
}
