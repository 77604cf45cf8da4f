package domain

import (
	"errors"
	"testing"
)

func TestNewFlashcard(t *testing.T) {
	t.Parallel()

	card, err := NewFlashcard("  Who was Napoleon? ", "\nwho napoleon\n", "  Napoleon was a French military leader.  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.Question != "Who was Napoleon?" {
		t.Errorf("Expected trimmed question, got %q", card.Question)
	}

	if card.OriginalQuestion != "who napoleon" {
		t.Errorf("Expected trimmed original question, got %q", card.OriginalQuestion)
	}

	if card.Answer != "Napoleon was a French military leader." {
		t.Errorf("Expected trimmed answer, got %q", card.Answer)
	}

	if card.Fallback {
		t.Error("Expected generated card not to be marked as fallback")
	}

	// Whitespace-only question is malformed output
	_, err = NewFlashcard("   ", "raw", "chunk")
	if !errors.Is(err, ErrEmptyQuestion) {
		t.Errorf("Expected error %v, got %v", ErrEmptyQuestion, err)
	}

	_, err = NewFlashcard("question", "raw", " ")
	if !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("Expected error %v, got %v", ErrEmptyAnswer, err)
	}
}

func TestNewFallbackFlashcard(t *testing.T) {
	t.Parallel()

	card := NewFallbackFlashcard(" He became Emperor in 1804. ")

	if card.Question != FallbackQuestion {
		t.Errorf("Expected question %q, got %q", FallbackQuestion, card.Question)
	}

	if card.OriginalQuestion != FallbackOriginalQuestion {
		t.Errorf("Expected original question %q, got %q", FallbackOriginalQuestion, card.OriginalQuestion)
	}

	if card.Answer != "He became Emperor in 1804." {
		t.Errorf("Expected trimmed answer, got %q", card.Answer)
	}

	if !card.Fallback {
		t.Error("Expected fallback card to be marked as fallback")
	}
}

func TestQuestions(t *testing.T) {
	t.Parallel()

	cards := []Flashcard{
		{Question: "Q1", Answer: "A1"},
		NewFallbackFlashcard("A2"),
		{Question: "Q3", Answer: "A3"},
	}

	got := Questions(cards)
	want := []string{"Q1", FallbackQuestion, "Q3"}

	if len(got) != len(want) {
		t.Fatalf("Expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Question %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if len(Questions(nil)) != 0 {
		t.Error("Expected no questions for nil cards")
	}
}
