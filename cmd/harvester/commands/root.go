package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/qepting91/complaint-harvester/internal/collector"
	"github.com/qepting91/complaint-harvester/internal/config"
	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/spf13/cobra"
)

var (
	configPath *string
	logLevel   *string
)

var rootCmd = &cobra.Command{
	Use:   "harvester",
	Short: "harvester collects complaint posts from an infinitely scrolling feed and analyzes them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional
		_ = godotenv.Load()

		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(*logLevel))); err != nil {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "Harvester configuration file.")
	logLevel = rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.File, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newProvider builds a fresh page provider. COLLECTOR_MODE=fixture replays FIXTURE_PATH offline.
func newProvider(cfg config.File, headful bool) (domain.PageStateProvider, error) {
	return collector.NewProvider(collector.Options{
		Mode:         os.Getenv("COLLECTOR_MODE"),
		CardSelector: cfg.Selectors.Card,
		Headful:      headful || cfg.Headful,
		FixturePath:  os.Getenv("FIXTURE_PATH"),
	})
}
