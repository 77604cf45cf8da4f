package backends_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/platform/backends"
	"github.com/phrazzld/scry-flashgen/internal/platform/gemini"
	"github.com/phrazzld/scry-flashgen/internal/platform/huggingface"
	"github.com/phrazzld/scry-flashgen/internal/platform/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name   string
		cfg    config.ModelConfig
		assert func(t *testing.T, model generation.TextModel)
	}{
		{
			name: "huggingface",
			cfg:  config.ModelConfig{Provider: backends.ProviderHuggingFace, Name: "google/flan-t5-small"},
			assert: func(t *testing.T, model generation.TextModel) {
				assert.IsType(t, &huggingface.Model{}, model)
			},
		},
		{
			name: "gemini",
			cfg:  config.ModelConfig{Provider: backends.ProviderGemini, Name: "gemini-2.0-flash", APIKey: "k"},
			assert: func(t *testing.T, model generation.TextModel) {
				assert.IsType(t, &gemini.Model{}, model)
			},
		},
		{
			name: "ollama",
			cfg:  config.ModelConfig{Provider: backends.ProviderOllama, Name: "llama3", BaseURL: "http://localhost:11434"},
			assert: func(t *testing.T, model generation.TextModel) {
				assert.IsType(t, &ollama.Model{}, model)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			load, err := backends.NewLoader(logger, tc.cfg)
			require.NoError(t, err)

			model, err := load(context.Background())
			require.NoError(t, err)
			tc.assert(t, model)
		})
	}

	t.Run("unknown provider", func(t *testing.T) {
		_, err := backends.NewLoader(logger, config.ModelConfig{Provider: "openai", Name: "x"})
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}

func TestNewModelService(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := backends.NewModelService(logger,
		config.ModelConfig{Provider: backends.ProviderHuggingFace, Name: "google/flan-t5-small", MaxOutputTokens: 64},
		config.GenerationConfig{ModelTimeout: 30 * time.Second, SerializeInference: true})
	require.NoError(t, err)
	assert.Equal(t, "google/flan-t5-small", svc.Name())
}
