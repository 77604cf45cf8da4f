package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"google.golang.org/genai"
)

// Model implements generation.TextModel using the Gemini API.
type Model struct {
	logger *slog.Logger
	client *genai.Client
	name   string
}

// Option customizes a Model during construction.
type Option func(*genai.ClientConfig)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = c
	}
}

// NewModel creates a Gemini-backed text model from cfg.
func NewModel(ctx context.Context, logger *slog.Logger, cfg config.ModelConfig, opts ...Option) (*Model, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %w", generation.ErrInvalidConfig, ErrMissingAPIKey)
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	for _, opt := range opts {
		opt(clientConfig)
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Model{
		logger: logger.With("provider", "gemini", "model", cfg.Name),
		client: client,
		name:   cfg.Name,
	}, nil
}

// Loader adapts NewModel to a generation.Loader.
func Loader(logger *slog.Logger, cfg config.ModelConfig) generation.Loader {
	return func(ctx context.Context) (generation.TextModel, error) {
		return NewModel(ctx, logger, cfg)
	}
}

// Generate implements generation.TextModel. Decoding uses temperature zero
// and a single candidate so identical prompts produce identical output.
func (m *Model) Generate(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		CandidateCount:  1,
		MaxOutputTokens: int32(opts.MaxOutputTokens),
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.name, genai.Text(prompt), genConfig)
	if err != nil {
		m.logger.ErrorContext(ctx, "Gemini API call error", "error", err)
		return "", err
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
