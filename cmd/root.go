package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
	"github.com/lehigh-university-libraries/episode-explorer/internal/config"
	"github.com/lehigh-university-libraries/episode-explorer/internal/episodes"
	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags and the resolved config to
// subcommands.
type rootOptions struct {
	configPath string
	dataPath   string
	logLevel   string

	cfg    config.Config
	tables *episodes.Cache
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{tables: episodes.NewCache()}

	cmd := &cobra.Command{
		Use:   "episode-explorer",
		Short: "Browse Law & Order: SVU episode metadata",
		Long: `Episode Explorer loads a table of television episode metadata and lets you
filter it by season, free-text search, rating range and cast member.

It serves an interactive web dashboard and offers the same views on the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.dataPath != "" {
				cfg.DataPath = opts.dataPath
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}

			level, err := config.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file (default ./explorer.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "Path to the episode table (.csv, .jsonl or .parquet)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Add subcommands
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))

	return cmd
}

// engine loads the configured table (once per process) and prepares the
// filter engine. A load failure is fatal for every command.
func (o *rootOptions) engine() (*browser.Engine, error) {
	table, err := o.tables.Load(o.cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load episodes: %w", err)
	}
	return browser.NewEngine(table, browser.Options{
		SentinelSeasons: o.cfg.SentinelSeasons,
		TopCastSize:     o.cfg.TopCastSize,
	}), nil
}
