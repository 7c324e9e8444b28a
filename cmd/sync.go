package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userboard/internal/config"
	"userboard/pkg/logger"
)

// syncCommand constructs the 'sync' subcommand: one full pipeline run from
// the terminal, no HTTP server involved.
func syncCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetches the user list, replaces the local table and prints the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			strg, closeStrg := getSQLite(ctx, cfg)
			defer closeStrg()

			rep, err := getReporter(ctx, cfg, strg).Sync(ctx)
			if err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			logger.Info(ctx, "report ready",
				zap.Int("totalCount", rep.TotalCount),
				zap.Int("distinctDomains", rep.DistinctDomainCount),
				zap.Float64("meanNameLength", rep.MeanNameLength),
				zap.Int("maxNameLength", rep.MaxNameLength))
			for bucket, count := range rep.DomainCounts {
				logger.Info(ctx, "domain bucket",
					zap.String("domain", bucket),
					zap.Int("count", count),
					zap.Float64("meanNameLength", rep.DomainMeanLength[bucket]))
			}
			for i, u := range rep.TopByNameLength {
				logger.Info(ctx, "top name",
					zap.Int("rank", i+1),
					zap.String("name", u.Name),
					zap.Int("length", u.NameLength))
			}

			return nil
		},
	}

	return cmd
}
