package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/events"
	"github.com/phrazzld/scry-flashgen/internal/flashcard"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/notify"
	"github.com/phrazzld/scry-flashgen/internal/platform/backends"
	"github.com/phrazzld/scry-flashgen/internal/segment"
)

// application holds the wired pipeline shared by the serve and generate commands.
type application struct {
	config *config.Config
	logger *slog.Logger

	questionModel *generation.ModelService
	rewriteModel  *generation.ModelService

	eventEmitter *events.InMemoryEventEmitter
	service      *flashcard.Service
}

// appOptions holds per-invocation choices that are not part of the config file.
type appOptions struct {
	// presegmented treats every input line as one sentence instead of
	// running the punkt tokenizer.
	presegmented bool
}

// newApplication wires segmenter, models, notifier and assembler from cfg.
// Models are not loaded until initializeModels or the first request.
func newApplication(cfg *config.Config, logger *slog.Logger, opts appOptions) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	segmenter, err := newSegmenter(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize segmenter: %w", err)
	}

	app.questionModel, err = backends.NewModelService(
		logger.With("component", "question_model"),
		cfg.Models.Question,
		cfg.Generation,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure question model: %w", err)
	}

	app.rewriteModel, err = backends.NewModelService(
		logger.With("component", "rewrite_model"),
		cfg.Models.Rewrite,
		cfg.Generation,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure rewrite model: %w", err)
	}

	generator, err := generation.NewQuestionGenerator(app.questionModel, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create question generator: %w", err)
	}

	var promptTemplate string
	if path := cfg.Generation.RewritePromptPath; path != "" {
		promptTemplate, err = generation.LoadRewriteTemplate(path)
		if err != nil {
			return nil, err
		}
	}

	rewriter, err := generation.NewQuestionRewriter(app.rewriteModel, promptTemplate, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create question rewriter: %w", err)
	}

	notifier, err := newNotifier(cfg.Notify, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.Subscribe(events.TypeFlashcardsGenerated, notify.NewEventHandler(notifier, logger))

	assembler, err := flashcard.NewAssembler(
		segmenter,
		generator,
		rewriter,
		app.eventEmitter,
		flashcard.AssemblerConfig{
			Workers:    cfg.Generation.Workers,
			ExcerptLen: cfg.Generation.ExcerptLen,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create assembler: %w", err)
	}

	app.service, err = flashcard.NewService(assembler, cfg.Generation.DefaultMaxLen, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

func newSegmenter(opts appOptions) (*segment.Segmenter, error) {
	if opts.presegmented {
		return segment.NewSegmenter(segment.LineSplitter)
	}
	return segment.Default()
}

// newNotifier returns the email notifier when enabled, otherwise a no-op.
func newNotifier(cfg config.NotifyConfig, logger *slog.Logger) (notify.Notifier, error) {
	if !cfg.Enabled {
		logger.Info("Email notifications disabled")
		return notify.NopNotifier{Logger: logger}, nil
	}

	return notify.NewEmailNotifier(cfg, logger)
}

// initializeModels loads both models so the first request does not pay for it.
func (app *application) initializeModels(ctx context.Context) error {
	for _, m := range []*generation.ModelService{app.questionModel, app.rewriteModel} {
		if err := m.Initialize(ctx); err != nil {
			return err
		}
		app.logger.Info("Model ready", "model", m.Name())
	}
	return nil
}
