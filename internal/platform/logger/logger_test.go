package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		want  slog.Level
		known bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range testCases {
		level, ok := ParseLevel(tc.name)
		assert.Equal(t, tc.want, level, "level for %q", tc.name)
		assert.Equal(t, tc.known, ok, "known for %q", tc.name)
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	logBuf := &TestLogBuffer{}
	logger, err := SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, logBuf)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("filtered out")
	logger.Warn("kept", "chunk_index", 3)

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
	assert.Equal(t, float64(3), entries[0]["chunk_index"])

	// The configured logger becomes the default
	slog.Error("through default")
	AssertLogContains(t, logBuf, "through default")
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	logger, logBuf := GetTestLogger(t)

	ctx := WithLogger(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-123")

	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))

	FromContext(ctx).Info("with request")
	AssertLogField(t, logBuf, "request_id", "req-123")

	// Falls back to the default logger
	assert.NotNil(t, FromContext(context.Background()))
}

func TestCIHandler(t *testing.T) {
	t.Setenv("GITHUB_RUN_ID", "4242")

	logBuf := &TestLogBuffer{}
	logger := slog.New(NewCIHandler(logBuf, &slog.HandlerOptions{AddSource: true}))
	logger.With("component", "test").Info("ci record")

	AssertLogField(t, logBuf, "ci_run_id", "4242")
	AssertLogField(t, logBuf, "component", "test")
	AssertLogContains(t, logBuf, "source_file")
}
