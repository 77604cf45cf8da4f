package generation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// QuestionPrefix is the instruction placed before a chunk when asking the
// question-generation model for a question.
const QuestionPrefix = "generate question: "

// PromptQuestionGenerator implements QuestionGenerator on top of a Prompter.
type PromptQuestionGenerator struct {
	model  Prompter
	logger *slog.Logger
}

// NewQuestionGenerator creates a QuestionGenerator backed by model.
func NewQuestionGenerator(model Prompter, logger *slog.Logger) (*PromptQuestionGenerator, error) {
	if model == nil {
		return nil, errors.New("model cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &PromptQuestionGenerator{
		model:  model,
		logger: logger.With("stage", "question_generation"),
	}, nil
}

// GenerateQuestion implements QuestionGenerator.
func (g *PromptQuestionGenerator) GenerateQuestion(ctx context.Context, chunk string) (string, error) {
	chunk = strings.TrimSpace(chunk)
	if chunk == "" {
		return "", ErrEmptyInput
	}

	g.logger.DebugContext(ctx, "Generating question", "chunk_length", len(chunk))

	return g.model.Prompt(ctx, QuestionPrefix+chunk)
}
