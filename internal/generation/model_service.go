package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ModelServiceConfig holds the per-model invocation policy.
type ModelServiceConfig struct {
	// Name identifies the model in logs and errors.
	Name string

	// MaxOutputTokens bounds every generation. Zero means DefaultMaxOutputTokens.
	MaxOutputTokens int

	// Timeout bounds a single invocation. Zero disables the bound.
	Timeout time.Duration

	// Serialize admits one invocation at a time, for inference runtimes
	// that are not reentrant. Waiting for a turn counts against Timeout.
	Serialize bool
}

// ModelService owns one pretrained model for the lifetime of the process.
// The model is loaded once, either eagerly through Initialize or lazily on
// the first Prompt; a load failure is remembered and never retried.
type ModelService struct {
	cfg    ModelServiceConfig
	load   Loader
	logger *slog.Logger

	initMu   sync.Mutex
	initDone bool
	model    TextModel
	initErr  error

	// sem holds one token per running invocation when Serialize is set.
	sem chan struct{}
}

// NewModelService creates a ModelService that will obtain its model from load.
func NewModelService(load Loader, cfg ModelServiceConfig, logger *slog.Logger) (*ModelService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if load == nil {
		return nil, fmt.Errorf("%w: model loader cannot be nil", ErrInvalidConfig)
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: timeout cannot be negative", ErrInvalidConfig)
	}

	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}

	s := &ModelService{
		cfg:    cfg,
		load:   load,
		logger: logger.With("model", cfg.Name),
	}
	if cfg.Serialize {
		s.sem = make(chan struct{}, 1)
	}

	return s, nil
}

// Name returns the configured model name.
func (s *ModelService) Name() string {
	return s.cfg.Name
}

// Initialize loads the model if that has not happened yet. It is safe to
// call concurrently; only the first call invokes the loader.
func (s *ModelService) Initialize(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.initDone {
		return s.initErr
	}
	s.initDone = true

	s.logger.InfoContext(ctx, "Loading model")
	start := time.Now()

	model, err := s.load(ctx)
	if err == nil && model == nil {
		err = errors.New("loader returned no model")
	}
	if err != nil {
		s.initErr = fmt.Errorf("%w: %s: %v", ErrModelUnavailable, s.cfg.Name, err)
		s.logger.ErrorContext(ctx, "Model failed to load", "error", err)
		return s.initErr
	}

	s.model = model
	s.logger.InfoContext(ctx, "Model loaded", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

type promptResult struct {
	output string
	err    error
}

// Prompt runs the model on prompt and returns its trimmed output.
//
// The invocation is bounded by the configured timeout even when the backend
// ignores context cancellation. A timeout yields ErrTimeout, blank output
// yields ErrEmptyOutput, and any other backend failure is wrapped in
// ErrGenerationFailed.
func (s *ModelService) Prompt(ctx context.Context, prompt string) (string, error) {
	// Lazy loading must not be tied to the lifetime of the first request.
	if err := s.Initialize(context.WithoutCancel(ctx)); err != nil {
		return "", err
	}

	callCtx := ctx
	var cancel context.CancelFunc = func() {}
	if s.cfg.Timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
	}
	defer cancel()

	// A backend that ignores cancellation keeps its token until it returns,
	// so the wait for a turn must itself be bounded by callCtx.
	if s.sem != nil {
		select {
		case s.sem <- struct{}{}:
		case <-callCtx.Done():
			return "", s.callError(callCtx, callCtx.Err())
		}
	}

	done := make(chan promptResult, 1)
	go func() {
		if s.sem != nil {
			defer func() { <-s.sem }()
		}
		output, err := s.model.Generate(callCtx, prompt, GenerateOptions{
			MaxOutputTokens: s.cfg.MaxOutputTokens,
		})
		done <- promptResult{output: output, err: err}
	}()

	var res promptResult
	select {
	case res = <-done:
	case <-callCtx.Done():
		res.err = callCtx.Err()
	}

	if res.err != nil {
		return "", s.callError(callCtx, res.err)
	}

	output := strings.TrimSpace(res.output)
	if output == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyOutput, s.cfg.Name)
	}

	s.logger.DebugContext(ctx, "Model invocation succeeded",
		"prompt_length", len(prompt),
		"output_length", len(output))

	return output, nil
}

// callError classifies a failed invocation. An expired deadline is a
// timeout; anything else is a generation failure.
func (s *ModelService) callError(callCtx context.Context, err error) error {
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s", ErrTimeout, s.cfg.Name, s.cfg.Timeout)
	}
	return fmt.Errorf("%w: %s: %w", ErrGenerationFailed, s.cfg.Name, err)
}
