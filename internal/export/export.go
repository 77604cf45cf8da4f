// Package export writes flashcards in the tabular and JSON shapes consumed by
// review tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/phrazzld/scry-flashgen/internal/domain"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// CSVContentType is the media type of WriteCSV output.
const CSVContentType = "text/csv; charset=utf-8"

// WriteCSV writes cards as CSV with the header question,original_question,answer.
// A header is written even when cards is empty.
func WriteCSV(w io.Writer, cards []domain.Flashcard) error {
	if cards == nil {
		cards = []domain.Flashcard{}
	}
	if err := gocsv.Marshal(cards, w); err != nil {
		return fmt.Errorf("failed to write flashcards as CSV: %w", err)
	}
	return nil
}

// Document is the JSON envelope written by WriteJSON.
type Document struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// WriteJSON writes cards as an indented JSON document.
func WriteJSON(w io.Writer, cards []domain.Flashcard) error {
	if cards == nil {
		cards = []domain.Flashcard{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Flashcards: cards}); err != nil {
		return fmt.Errorf("failed to write flashcards as JSON: %w", err)
	}
	return nil
}

// Write dispatches to WriteCSV or WriteJSON by format name.
func Write(w io.Writer, format string, cards []domain.Flashcard) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, cards)
	case FormatJSON:
		return WriteJSON(w, cards)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
