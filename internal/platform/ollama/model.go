// Package ollama provides a generation.TextModel served by a local Ollama
// daemon through langchaingo.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"
)

// Model implements generation.TextModel on top of a langchaingo LLM.
type Model struct {
	llm    llms.Model
	logger *slog.Logger
}

// NewModel connects to the Ollama server described by cfg. An empty BaseURL
// falls back to the langchaingo default (OLLAMA_HOST or localhost).
func NewModel(logger *slog.Logger, cfg config.ModelConfig, httpClient *http.Client) (*Model, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []lcollama.Option{lcollama.WithModel(cfg.Name)}
	if cfg.BaseURL != "" {
		opts = append(opts, lcollama.WithServerURL(cfg.BaseURL))
	}
	if httpClient != nil {
		opts = append(opts, lcollama.WithHTTPClient(httpClient))
	}

	llm, err := lcollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create ollama client: %v", generation.ErrInvalidConfig, err)
	}

	return &Model{
		llm:    llm,
		logger: logger.With("provider", "ollama", "model", cfg.Name),
	}, nil
}

// Loader adapts NewModel to a generation.Loader.
func Loader(logger *slog.Logger, cfg config.ModelConfig) generation.Loader {
	return func(ctx context.Context) (generation.TextModel, error) {
		return NewModel(logger, cfg, nil)
	}
}

// Generate implements generation.TextModel with temperature zero and a fixed seed.
func (m *Model) Generate(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error) {
	callOpts := []llms.CallOption{
		llms.WithTemperature(0),
		llms.WithSeed(0),
	}
	if opts.MaxOutputTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxOutputTokens))
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt, callOpts...)
	if err != nil {
		m.logger.ErrorContext(ctx, "Ollama generation failed", "error", err)
		return "", err
	}

	return out, nil
}
