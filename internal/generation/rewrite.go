package generation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/template"
)

// DefaultRewriteTemplate is the instruction given to the rewrite model. It
// receives the raw question as .Question and the chunk text as .Answer.
const DefaultRewriteTemplate = "Rewrite this into a meaningful, clear question a student might be asked " +
	"at the end of a lesson:\n{{.Question}} so we can expect this as the answer: {{.Answer}}"

// rewriteData represents the data passed to the rewrite template
type rewriteData struct {
	Question string
	Answer   string
}

// TemplateRewriter implements QuestionRewriter by rendering a prompt template
// and sending it to a Prompter.
type TemplateRewriter struct {
	model    Prompter
	template *template.Template
	logger   *slog.Logger
}

// NewQuestionRewriter creates a QuestionRewriter backed by model. An empty
// promptTemplate selects DefaultRewriteTemplate.
func NewQuestionRewriter(model Prompter, promptTemplate string, logger *slog.Logger) (*TemplateRewriter, error) {
	if model == nil {
		return nil, errors.New("model cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if promptTemplate == "" {
		promptTemplate = DefaultRewriteTemplate
	}

	tmpl, err := template.New("rewrite").Option("missingkey=error").Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse rewrite template: %v", ErrInvalidConfig, err)
	}

	return &TemplateRewriter{
		model:    model,
		template: tmpl,
		logger:   logger.With("stage", "question_rewrite"),
	}, nil
}

// LoadRewriteTemplate reads a rewrite prompt template from disk.
func LoadRewriteTemplate(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read rewrite template from %s: %v", ErrInvalidConfig, path, err)
	}
	return string(content), nil
}

// Rewrite implements QuestionRewriter.
func (r *TemplateRewriter) Rewrite(ctx context.Context, rawQuestion, answer string) (string, error) {
	prompt, err := r.createPrompt(rawQuestion, answer)
	if err != nil {
		return "", err
	}

	r.logger.DebugContext(ctx, "Rewriting question",
		"question_length", len(rawQuestion),
		"prompt_length", len(prompt))

	return r.model.Prompt(ctx, prompt)
}

func (r *TemplateRewriter) createPrompt(rawQuestion, answer string) (string, error) {
	data := rewriteData{
		Question: strings.TrimSpace(rawQuestion),
		Answer:   strings.TrimSpace(answer),
	}

	if data.Question == "" || data.Answer == "" {
		return "", ErrEmptyInput
	}

	var buf bytes.Buffer
	if err := r.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute rewrite template: %w", err)
	}

	return buf.String(), nil
}
