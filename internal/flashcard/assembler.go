package flashcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/events"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"golang.org/x/sync/errgroup"
)

// DefaultExcerptLen is the number of characters of input forwarded with the
// completion event.
const DefaultExcerptLen = 200

// QuestionSeparator joins the generated questions in the completion event.
const QuestionSeparator = ","

// Chunker splits text into bounded chunks. *segment.Segmenter satisfies it.
type Chunker interface {
	Chunk(text string, maxLen int) ([]string, error)
}

// AssemblerConfig controls concurrency and event content.
type AssemblerConfig struct {
	// Workers bounds how many chunks are processed at once. Values below 1
	// are treated as 1.
	Workers int

	// ExcerptLen is the rune length of the excerpt attached to the completion
	// event. Zero means DefaultExcerptLen.
	ExcerptLen int
}

// Assembler runs the chunk, generate, rewrite pipeline for one document.
type Assembler struct {
	chunker   Chunker
	generator generation.QuestionGenerator
	rewriter  generation.QuestionRewriter
	emitter   events.EventEmitter
	cfg       AssemblerConfig
	logger    *slog.Logger
}

// NewAssembler creates an Assembler. emitter may be nil, in which case no
// completion event is published.
func NewAssembler(
	chunker Chunker,
	generator generation.QuestionGenerator,
	rewriter generation.QuestionRewriter,
	emitter events.EventEmitter,
	cfg AssemblerConfig,
	logger *slog.Logger,
) (*Assembler, error) {
	if chunker == nil {
		return nil, errors.New("chunker cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("question generator cannot be nil")
	}
	if rewriter == nil {
		return nil, errors.New("question rewriter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.ExcerptLen <= 0 {
		cfg.ExcerptLen = DefaultExcerptLen
	}

	return &Assembler{
		chunker:   chunker,
		generator: generator,
		rewriter:  rewriter,
		emitter:   emitter,
		cfg:       cfg,
		logger:    logger.With("component", "flashcard_assembler"),
	}, nil
}

// chunkResult is the outcome of one chunk. err is set when card is a fallback.
type chunkResult struct {
	card domain.Flashcard
	err  error
}

// Assemble produces one flashcard per chunk of text, in chunk order.
//
// Segmentation errors are returned. A failure while generating or rewriting
// the question for a chunk is logged and replaced by a fallback card; it
// never aborts the document.
func (a *Assembler) Assemble(ctx context.Context, text string, maxLen int) ([]domain.Flashcard, error) {
	return a.assemble(ctx, uuid.New(), text, maxLen)
}

// AssembleRequest is Assemble for a validated request.
func (a *Assembler) AssembleRequest(ctx context.Context, req *domain.GenerationRequest) ([]domain.Flashcard, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return a.assemble(ctx, req.ID, req.Text, req.MaxLen)
}

func (a *Assembler) assemble(
	ctx context.Context,
	requestID uuid.UUID,
	text string,
	maxLen int,
) ([]domain.Flashcard, error) {
	log := a.logger.With("request_id", requestID.String())

	chunks, err := a.chunker.Chunk(text, maxLen)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "Assembling flashcards",
		"chunk_count", len(chunks),
		"max_len", maxLen,
		"workers", a.cfg.Workers)

	results := make([]chunkResult, len(chunks))

	var g errgroup.Group
	g.SetLimit(a.cfg.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			results[i] = a.processChunk(ctx, chunk)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		log.WarnContext(ctx, "Flashcard assembly cancelled", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	cards := make([]domain.Flashcard, len(results))
	fallbacks := 0
	for i, res := range results {
		if res.err != nil {
			fallbacks++
			log.WarnContext(ctx, "Using fallback flashcard for chunk",
				"chunk_index", i,
				"error", res.err)
		}
		cards[i] = res.card
	}

	a.publish(ctx, log, events.FlashcardsGenerated{
		RequestID:     requestID,
		Excerpt:       excerpt(text, a.cfg.ExcerptLen),
		Questions:     strings.Join(domain.Questions(cards), QuestionSeparator),
		CardCount:     len(cards),
		FallbackCount: fallbacks,
	})

	log.InfoContext(ctx, "Flashcards assembled",
		"card_count", len(cards),
		"fallback_count", fallbacks)

	return cards, nil
}

func (a *Assembler) processChunk(ctx context.Context, chunk string) (res chunkResult) {
	defer func() {
		if r := recover(); r != nil {
			res = chunkResult{
				card: domain.NewFallbackFlashcard(chunk),
				err:  fmt.Errorf("%w: %v", errChunkPanic, r),
			}
		}
	}()

	fallback := func(err error) chunkResult {
		return chunkResult{card: domain.NewFallbackFlashcard(chunk), err: err}
	}

	if err := ctx.Err(); err != nil {
		return fallback(err)
	}

	raw, err := a.generator.GenerateQuestion(ctx, chunk)
	if err != nil {
		return fallback(fmt.Errorf("question generation: %w", err))
	}

	rewritten, err := a.rewriter.Rewrite(ctx, raw, chunk)
	if err != nil {
		return fallback(fmt.Errorf("question rewrite: %w", err))
	}

	card, err := domain.NewFlashcard(rewritten, raw, chunk)
	if err != nil {
		return fallback(err)
	}

	return chunkResult{card: card}
}

// publish emits the completion event. Handler failures, panics included,
// are logged and never reach the caller.
func (a *Assembler) publish(ctx context.Context, log *slog.Logger, payload events.FlashcardsGenerated) {
	if a.emitter == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Completion event handler panicked", "panic", fmt.Sprint(r))
		}
	}()

	event, err := events.NewFlashcardsGeneratedEvent(payload)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create completion event", "error", err)
		return
	}

	if err := a.emitter.EmitEvent(ctx, event); err != nil {
		log.WarnContext(ctx, "Completion event handler failed",
			"event_id", event.ID,
			"error", err)
	}
}

// excerpt returns the first n runes of text.
func excerpt(text string, n int) string {
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}
