package generation

import (
	"context"
)

// DefaultMaxOutputTokens bounds the length of generated questions.
const DefaultMaxOutputTokens = 64

// GenerateOptions controls a single text-to-text invocation.
type GenerateOptions struct {
	// MaxOutputTokens bounds the generated length.
	MaxOutputTokens int
}

// TextModel is a pretrained text-to-text model. Implementations must decode
// deterministically (no sampling) so identical prompts yield identical output.
type TextModel interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Loader creates a TextModel. It is called at most once per ModelService.
type Loader func(ctx context.Context) (TextModel, error)

// Prompter sends a finished prompt to a model and returns its output.
// ModelService is the production implementation.
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

// QuestionGenerator produces a raw candidate question for a chunk of text,
// treating the chunk as the implicit answer.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, chunk string) (string, error)
}

// QuestionRewriter transforms a raw question and its target answer into a
// more natural, exam-style question.
type QuestionRewriter interface {
	Rewrite(ctx context.Context, rawQuestion, answer string) (string, error)
}
