package huggingface

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
)

// DefaultBaseURL is the hosted inference endpoint used when none is configured.
const DefaultBaseURL = "https://api-inference.huggingface.co/models"

const defaultTimeout = 60 * time.Second

// ErrModelLoading is returned while the hosted model is still warming up.
var ErrModelLoading = errors.New("model is loading")

type inferenceParameters struct {
	MaxNewTokens int  `json:"max_new_tokens,omitempty"`
	DoSample     bool `json:"do_sample"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
	UseCache     bool `json:"use_cache"`
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
	Options    inferenceOptions    `json:"options"`
}

type inferenceOutput struct {
	GeneratedText string `json:"generated_text"`
}

type inferenceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// Model implements generation.TextModel against a single hosted model.
type Model struct {
	client *resty.Client
	name   string
	logger *slog.Logger
}

// NewModel creates a Model for cfg. The API key is optional for public models.
func NewModel(logger *slog.Logger, cfg config.ModelConfig, httpClient *http.Client) (*Model, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	if httpClient != nil {
		client = resty.NewWithClient(httpClient)
	}
	client.
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Model{
		client: client,
		name:   cfg.Name,
		logger: logger.With("provider", "huggingface", "model", cfg.Name),
	}, nil
}

// Loader adapts NewModel to a generation.Loader.
func Loader(logger *slog.Logger, cfg config.ModelConfig) generation.Loader {
	return func(ctx context.Context) (generation.TextModel, error) {
		return NewModel(logger, cfg, nil)
	}
}

// Generate implements generation.TextModel. Sampling is disabled so decoding
// is greedy and repeatable.
func (m *Model) Generate(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error) {
	body := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens: opts.MaxOutputTokens,
			DoSample:     false,
		},
		Options: inferenceOptions{
			WaitForModel: true,
			UseCache:     true,
		},
	}

	var outputs []inferenceOutput
	var apiErr inferenceError

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&outputs).
		SetError(&apiErr).
		Post("/" + m.name)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}

	if resp.IsError() {
		m.logger.ErrorContext(ctx, "Inference API returned an error",
			"status", resp.StatusCode(),
			"error", apiErr.Error)
		if resp.StatusCode() == http.StatusServiceUnavailable && apiErr.EstimatedTime > 0 {
			return "", fmt.Errorf("%w: retry in %.0fs", ErrModelLoading, apiErr.EstimatedTime)
		}
		return "", fmt.Errorf("inference API error (status %d): %s", resp.StatusCode(), apiErr.Error)
	}

	if len(outputs) == 0 {
		return "", fmt.Errorf("%w: no generated text", generation.ErrInvalidResponse)
	}

	return outputs[0].GeneratedText, nil
}
