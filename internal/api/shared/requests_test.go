package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Text   string `json:"text"    validate:"required"`
	MaxLen int    `json:"max_len" validate:"gte=0,lte=10"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"text":"hello","max_len":3}`},
		{name: "malformed", body: `{"text":`, wantErr: true},
		{name: "unknown field", body: `{"text":"hello","extra":1}`, wantErr: true},
		{name: "trailing data", body: `{"text":"a"}{"text":"b"}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var req sampleRequest
			err := DecodeJSON(httptest.NewRecorder(), r, &req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sampleRequest{Text: "hello", MaxLen: 3}, req)
		})
	}
}

func TestDecodeJSONTooLarge(t *testing.T) {
	body := `{"text":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var req sampleRequest
	err := DecodeJSON(httptest.NewRecorder(), r, &req)
	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, err, &tooLarge)
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "text is required", ValidationMessage(ValidateRequest(sampleRequest{})))
	assert.Equal(t, "max_len must be at least 0", ValidationMessage(ValidateRequest(sampleRequest{Text: "x", MaxLen: -1})))
	assert.Equal(t, "max_len must be at most 10", ValidationMessage(ValidateRequest(sampleRequest{Text: "x", MaxLen: 11})))
	assert.Equal(t, "Invalid request", ValidationMessage(assert.AnError))
	assert.NoError(t, ValidateRequest(sampleRequest{Text: "x"}))
}
