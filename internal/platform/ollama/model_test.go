package ollama_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/platform/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = io.WriteString(w, `{"model":"flan-t5","message":{"role":"assistant","content":"Who was Napoleon?"},"done":true}`+"\n")
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	model, err := ollama.NewModel(logger, config.ModelConfig{
		Provider: "ollama",
		Name:     "flan-t5",
		BaseURL:  srv.URL,
	}, srv.Client())
	require.NoError(t, err)

	out, err := model.Generate(context.Background(), "generate question: Napoleon.", generation.GenerateOptions{MaxOutputTokens: 64})
	require.NoError(t, err)
	assert.Equal(t, "Who was Napoleon?", out)

	assert.Equal(t, "flan-t5", got["model"])
	options, ok := got["options"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 64, options["num_predict"])
	assert.EqualValues(t, 0, options["temperature"])
}

func TestGenerateServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"model 'missing' not found"}`+"\n")
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	model, err := ollama.NewModel(logger, config.ModelConfig{Name: "missing", BaseURL: srv.URL}, srv.Client())
	require.NoError(t, err)

	_, err = model.Generate(context.Background(), "p", generation.GenerateOptions{})
	assert.Error(t, err)
}

func TestNewModelValidation(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := ollama.NewModel(logger, config.ModelConfig{}, nil)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
