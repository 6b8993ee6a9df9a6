package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dgallion1/linkgest/internal/config"
	"github.com/dgallion1/linkgest/internal/parser"
	"github.com/dgallion1/linkgest/internal/pipeline"
	"github.com/dgallion1/linkgest/internal/runlog"
	"github.com/dgallion1/linkgest/internal/urlmatch"
	"github.com/spf13/cobra"
)

func newRootCommand(cfg config.Config) *cobra.Command {
	var (
		input     string
		output    string
		strict    bool
		debug     bool
		csvLimit  int
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "linkgest [input] [output]",
		Short: "Extract unique URLs from a document",
		Long: `linkgest scans a csv, txt, docx, xlsx, sqlite, markdown, html or pdf file
for http, https and ftp URLs and writes them, sorted and deduplicated, one per line.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" && len(args) > 0 {
				input = args[0]
			}
			if output == "" && len(args) > 1 {
				output = args[1]
			}

			log := newLogger(cmd.ErrOrStderr(), logFormat, debug)
			registry := parser.DefaultRegistry(parser.Options{
				CSVFieldSizeLimit:    csvLimit,
				PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
			})
			extractor := pipeline.NewExtractor(registry, urlmatch.New(), strict)

			log.Debug("starting extraction", "input", input, "output", output, "strict", strict)
			_, err := extractor.Run(input, output, runlog.Slog(log, slog.LevelInfo))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "document to scan")
	flags.StringVarP(&output, "output", "o", "", "text file to write the URLs to (overwritten)")
	flags.BoolVar(&strict, "strict", cfg.StrictFormats, "fail on unsupported file extensions instead of extracting nothing")
	flags.IntVar(&csvLimit, "csv-field-limit", cfg.CSVFieldSizeLimit, "largest csv field in characters (negative disables)")
	flags.StringVar(&logFormat, "log-format", cfg.LogFormat, "log format: text or json")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newFormatsCommand())
	return cmd
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported file extensions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, ext := range parser.DefaultRegistry(parser.Options{}).Extensions() {
				fmt.Fprintln(cmd.OutOrStdout(), ext)
			}
		},
	}
}

func newLogger(w io.Writer, format string, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
