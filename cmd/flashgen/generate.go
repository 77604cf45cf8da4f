package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/scry-flashgen/internal/export"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	file   string
	maxLen int
	format string
	out    string

	presegmented bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate flashcards from a file or stdin",
		Long: `Reads a document from --file (or stdin), generates one flashcard per chunk
and writes them as CSV or JSON to --out (or stdout).`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Input text file (default stdin)")
	cmd.Flags().IntVar(&opts.maxLen, "max-len", 0, "Maximum chunk length in characters (0 uses the configured default)")
	cmd.Flags().StringVar(&opts.format, "format", export.FormatCSV, "Output format: csv or json")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&opts.presegmented, "presegmented", false, "Treat each input line as one sentence instead of detecting sentences")

	return cmd
}

func (o *generateOptions) validate() error {
	if o.maxLen < 0 {
		return fmt.Errorf("--max-len must be at least 0, got %d", o.maxLen)
	}

	o.format = strings.ToLower(o.format)
	if o.format != export.FormatCSV && o.format != export.FormatJSON {
		return fmt.Errorf("--format must be %q or %q, got %q", export.FormatCSV, export.FormatJSON, o.format)
	}

	return nil
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	text, err := readInput(cmd.InOrStdin(), opts.file)
	if err != nil {
		return err
	}

	// stdout carries the cards, so logs go to stderr.
	cfg, logger, err := loadAppConfig(root, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, appOptions{presegmented: opts.presegmented})
	if err != nil {
		return err
	}

	cards, err := app.service.GenerateFlashcards(cmd.Context(), text, opts.maxLen)
	if err != nil {
		return fmt.Errorf("failed to generate flashcards: %w", err)
	}

	if opts.out == "" {
		return export.Write(cmd.OutOrStdout(), opts.format, cards)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := export.Write(f, opts.format, cards); err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Info("Flashcards written", "path", opts.out, "count", len(cards), "format", opts.format)
	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
