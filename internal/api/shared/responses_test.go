package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(SetTraceID(r.Context(), "trace-123"))

	RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorResponse{Error: "Invalid request format", TraceID: "trace-123"}, resp)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	testLogger, buf := logger.GetTestLogger(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/flashcards", nil)
	ctx := logger.WithLogger(context.Background(), testLogger)
	r = r.WithContext(SetTraceID(ctx, "trace-456"))

	secret := errors.New("smtp auth failed for ops@example.com")
	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate flashcards", secret)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "ops@example.com")
	assert.Contains(t, w.Body.String(), "Failed to generate flashcards")

	logger.AssertLogField(t, buf, "level", "ERROR")
	logger.AssertLogField(t, buf, "trace_id", "trace-456")
	assert.NotContains(t, buf.String(), "ops@example.com")
}
