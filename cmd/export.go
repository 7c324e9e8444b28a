package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userboard/internal/config"
	"userboard/pkg/logger"
)

// exportCommand constructs the 'export' subcommand that writes the enriched
// table as CSV, to stdout by default or to the file given with -o.
func exportCommand(cfg *config.Config) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports the enriched user table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			strg, closeStrg := getSQLite(ctx, cfg)
			defer closeStrg()

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("could not create output file: %w", err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						logger.Warn(ctx, "could not close output file", zap.Error(err))
					}
				}()
				out = f
			}

			if err := getReporter(ctx, cfg, strg).WriteCSV(ctx, out); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path, stdout when empty")

	return cmd
}
