package api

import "github.com/phrazzld/scry-flashgen/internal/domain"

// GenerateFlashcardsRequest is the body of POST /api/flashcards and
// POST /api/flashcards/export. A zero or absent max_len selects the default.
type GenerateFlashcardsRequest struct {
	Text   string `json:"text"    validate:"required"`
	MaxLen int    `json:"max_len" validate:"gte=0,lte=100000"`
}

// FlashcardsResponse is the body of a successful POST /api/flashcards.
type FlashcardsResponse struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
