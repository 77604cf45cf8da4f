package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "flashgen",
		Short:         "Turn study text into question/answer flashcards",
		Long:          `Splits text into sentence-aligned chunks and asks two text-to-text models for an exam-style question per chunk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a config file (default ./config.yaml)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newGenerateCmd(opts))

	return cmd
}

// loadAppConfig loads configuration and sets up the logger writing to out.
func loadAppConfig(opts *rootOptions, out io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.SetupWithWriter(cfg.Server, out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Debug("Configuration loaded",
		"port", cfg.Server.Port,
		"question_provider", cfg.Models.Question.Provider,
		"question_model", cfg.Models.Question.Name,
		"rewrite_provider", cfg.Models.Rewrite.Provider,
		"rewrite_model", cfg.Models.Rewrite.Name,
		"workers", cfg.Generation.Workers,
		"notify_enabled", cfg.Notify.Enabled)

	return cfg, l, nil
}
