package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-flashgen/internal/generation"
)

// MockTextModel implements generation.TextModel for testing
type MockTextModel struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, opts generation.GenerateOptions) (string, error)

	// Default response values
	Output string
	Err    error

	mu      sync.Mutex
	prompts []string
	options []generation.GenerateOptions
}

// Generate implements the generation.TextModel interface
func (m *MockTextModel) Generate(
	ctx context.Context,
	prompt string,
	opts generation.GenerateOptions,
) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.options = append(m.options, opts)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, opts)
	}
	return m.Output, m.Err
}

// Prompts returns every prompt passed to Generate, in call order.
func (m *MockTextModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Options returns every GenerateOptions passed to Generate, in call order.
func (m *MockTextModel) Options() []generation.GenerateOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.GenerateOptions(nil), m.options...)
}

// MockPrompter implements generation.Prompter for testing
type MockPrompter struct {
	PromptFn func(ctx context.Context, prompt string) (string, error)
	Output   string
	Err      error

	mu      sync.Mutex
	prompts []string
}

// Prompt implements the generation.Prompter interface
func (m *MockPrompter) Prompt(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.PromptFn != nil {
		return m.PromptFn(ctx, prompt)
	}
	return m.Output, m.Err
}

// Prompts returns every prompt received, in call order.
func (m *MockPrompter) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// MockQuestionGenerator implements generation.QuestionGenerator for testing
type MockQuestionGenerator struct {
	GenerateQuestionFn func(ctx context.Context, chunk string) (string, error)

	mu     sync.Mutex
	chunks []string
}

// GenerateQuestion implements the generation.QuestionGenerator interface.
// Without GenerateQuestionFn it returns "Q: " followed by the chunk.
func (m *MockQuestionGenerator) GenerateQuestion(ctx context.Context, chunk string) (string, error) {
	m.mu.Lock()
	m.chunks = append(m.chunks, chunk)
	m.mu.Unlock()

	if m.GenerateQuestionFn != nil {
		return m.GenerateQuestionFn(ctx, chunk)
	}
	return "Q: " + chunk, nil
}

// Chunks returns every chunk received, in call order.
func (m *MockQuestionGenerator) Chunks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.chunks...)
}

// MockQuestionRewriter implements generation.QuestionRewriter for testing
type MockQuestionRewriter struct {
	RewriteFn func(ctx context.Context, rawQuestion, answer string) (string, error)

	mu    sync.Mutex
	calls int
}

// Rewrite implements the generation.QuestionRewriter interface.
// Without RewriteFn it returns the raw question with "Rewritten " prepended.
func (m *MockQuestionRewriter) Rewrite(ctx context.Context, rawQuestion, answer string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.RewriteFn != nil {
		return m.RewriteFn(ctx, rawQuestion, answer)
	}
	return "Rewritten " + rawQuestion, nil
}

// Calls returns how many times Rewrite was called.
func (m *MockQuestionRewriter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
