// Package main provides the CLI entrypoint for the user report service.
// It wires subcommands (serve, sync, export, migrate), loads configuration,
// and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userboard/internal/config"
	"userboard/internal/report"
	"userboard/pkg/fetcher/jsonplaceholder"
	"userboard/pkg/logger"
	"userboard/pkg/metrics"
	"userboard/pkg/storage/sqlite"
)

// getSQLite opens the local database file from configuration and returns it
// along with a cleanup function to close the pool.
func getSQLite(ctx context.Context, cfg *config.Config) (*sqlite.SQLite, func()) {
	strg, err := sqlite.New(sqlite.Options{
		Path: cfg.Database.Path,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create sqlite storage", zap.Error(err))
	}

	return strg, func() {
		logger.Info(ctx, "closing sqlite client...")
		if err = strg.Close(); err != nil {
			logger.Warn(ctx, "could not close sqlite connection", zap.Error(err))
		}
	}
}

// getReporter assembles the pipeline core: the upstream client bounded by the
// fetch timeout, the metric instruments and the reporter itself.
func getReporter(ctx context.Context, cfg *config.Config, strg *sqlite.SQLite) report.Reporter {
	client := jsonplaceholder.New(&http.Client{Timeout: cfg.Source.FetchTimeout}, cfg.Source.URL)

	pipeline, err := metrics.NewPipeline()
	if err != nil {
		logger.Fatal(ctx, "could not create pipeline metrics", zap.Error(err))
	}

	return report.New(client, strg, pipeline, report.NewOptions(cfg))
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "userboard",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		syncCommand(cfg),
		exportCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
