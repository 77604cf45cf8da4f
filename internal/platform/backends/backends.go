// Package backends selects the model backend named by configuration.
package backends

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/platform/gemini"
	"github.com/phrazzld/scry-flashgen/internal/platform/huggingface"
	"github.com/phrazzld/scry-flashgen/internal/platform/ollama"
)

// Supported provider names.
const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
	ProviderOllama      = "ollama"
)

// NewLoader returns a generation.Loader for the provider in cfg. No network
// connection is made until the loader runs.
func NewLoader(logger *slog.Logger, cfg config.ModelConfig) (generation.Loader, error) {
	switch cfg.Provider {
	case ProviderHuggingFace:
		return huggingface.Loader(logger, cfg), nil
	case ProviderGemini:
		return gemini.Loader(logger, cfg), nil
	case ProviderOllama:
		return ollama.Loader(logger, cfg), nil
	default:
		return nil, fmt.Errorf("%w: unknown model provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// NewModelService builds the ModelService for one generation stage.
func NewModelService(
	logger *slog.Logger,
	model config.ModelConfig,
	gen config.GenerationConfig,
) (*generation.ModelService, error) {
	load, err := NewLoader(logger, model)
	if err != nil {
		return nil, err
	}

	return generation.NewModelService(load, generation.ModelServiceConfig{
		Name:            model.Name,
		MaxOutputTokens: model.MaxOutputTokens,
		Timeout:         gen.ModelTimeout,
		Serialize:       gen.SerializeInference,
	}, logger)
}
