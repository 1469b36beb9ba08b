package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/closette/pkg/extract"
	"github.com/donaldgifford/closette/pkg/logger"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <image>",
		Short: "Extract fashion attributes from an image",
		Long: "Runs the configured vision backend locally against an image URL or data URI\n" +
			"and prints the attributes and the query they produce. Unlike the server, a\n" +
			"failed analysis is reported instead of falling back.",
		Example: `  closette analyze https://example.com/dress.jpg
  closette analyze https://example.com/dress.jpg --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServerConfig()
			if err != nil {
				return err
			}

			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
			extractor, err := buildExtractor(cmd.Context(), cfg.Vision, log)
			if err != nil {
				return err
			}

			return analyze(cmd.Context(), cmd.OutOrStdout(), extractor, extractor.Backend(), args[0], jsonOutput())
		},
	}
}

func analyze(ctx context.Context, w io.Writer, ex extract.Extractor, backend, imageRef string, asJSON bool) error {
	attrs, err := ex.Extract(ctx, imageRef)
	if err != nil {
		return fmt.Errorf("analyzing image with %s: %w", backend, err)
	}

	if asJSON {
		return outputJSON(w, attrs)
	}
	return printAttributes(w, attrs)
}
