package domain

import (
	"strings"
)

// Sentinel values used when a chunk could not be turned into a generated question.
const (
	// FallbackQuestion is the generic question placed on a fallback card.
	FallbackQuestion = "What information is in this text?"

	// FallbackOriginalQuestion marks a fallback card's missing first-stage question.
	FallbackOriginalQuestion = "N/A"
)

// Flashcard is a single question/answer pair produced from one chunk of a document.
// The answer is always the chunk text itself, so it never depends on model success.
type Flashcard struct {
	// Question is the rewritten, exam-style question shown to the learner.
	Question string `json:"question" csv:"question"`

	// OriginalQuestion is the raw output of the first generation stage,
	// kept for diagnostics.
	OriginalQuestion string `json:"original_question" csv:"original_question"`

	// Answer is the trimmed chunk text.
	Answer string `json:"answer" csv:"answer"`

	// Fallback reports whether the card carries the sentinel question.
	Fallback bool `json:"fallback" csv:"-"`
}

// NewFlashcard builds a card from the two model outputs and the chunk it answers.
// All three values are trimmed. Returns ErrEmptyQuestion or ErrEmptyAnswer if the
// trimmed question or answer is empty.
func NewFlashcard(question, originalQuestion, chunk string) (Flashcard, error) {
	card := Flashcard{
		Question:         strings.TrimSpace(question),
		OriginalQuestion: strings.TrimSpace(originalQuestion),
		Answer:           strings.TrimSpace(chunk),
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// NewFallbackFlashcard builds the sentinel card for a chunk whose generation failed.
func NewFallbackFlashcard(chunk string) Flashcard {
	return Flashcard{
		Question:         FallbackQuestion,
		OriginalQuestion: FallbackOriginalQuestion,
		Answer:           strings.TrimSpace(chunk),
		Fallback:         true,
	}
}

// Validate checks that the card has a question and an answer.
func (f Flashcard) Validate() error {
	if f.Question == "" {
		return ErrEmptyQuestion
	}

	if f.Answer == "" {
		return ErrEmptyAnswer
	}

	return nil
}

// Questions returns the question of every card, in order.
func Questions(cards []Flashcard) []string {
	questions := make([]string, 0, len(cards))
	for _, card := range cards {
		questions = append(questions, card.Question)
	}
	return questions
}
