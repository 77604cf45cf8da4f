package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/phrazzld/scry-flashgen/internal/api/shared"
	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/export"
	"github.com/phrazzld/scry-flashgen/internal/flashcard"
)

// ExportFilename is the attachment name of CSV exports.
const ExportFilename = "flashcards.csv"

// FlashcardHandler serves flashcard generation requests.
type FlashcardHandler struct {
	generator flashcard.Generator
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(generator flashcard.Generator) *FlashcardHandler {
	return &FlashcardHandler{generator: generator}
}

// GenerateFlashcards handles POST /api/flashcards requests.
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, ok := h.generate(w, r)
	if !ok {
		return
	}

	if cards == nil {
		cards = []domain.Flashcard{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, FlashcardsResponse{Flashcards: cards})
}

// ExportFlashcards handles POST /api/flashcards/export requests, returning
// the cards as a CSV attachment.
func (h *FlashcardHandler) ExportFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, ok := h.generate(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, cards); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to export flashcards", err)
		return
	}

	w.Header().Set("Content-Type", export.CSVContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// generate decodes the request and runs the pipeline. It writes the error
// response itself and reports false when the caller should stop.
func (h *FlashcardHandler) generate(w http.ResponseWriter, r *http.Request) ([]domain.Flashcard, bool) {
	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return nil, false
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+shared.ValidationMessage(err))
		return nil, false
	}

	cards, err := h.generator.GenerateFlashcards(r.Context(), req.Text, req.MaxLen)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, false
	}

	return cards, true
}
