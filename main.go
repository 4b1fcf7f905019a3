package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"nff-scraper/internal/config"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "nff-scraper",
	Short: "nff-scraper fetches a league table and fixture list from fotball.no into a JSON file.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(debug || os.Getenv("NFF_DEBUG") != "")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "nff.json5", "Config file; a <name>.local.json5 next to it overrides it.")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level.")
	addFetchFlags(rootCmd)
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the config file and environment, applies command line
// overrides and validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f := cmd.Flags().Lookup("out"); f != nil && f.Changed {
		cfg.Output = f.Value.String()
	}
	if f := cmd.Flags().Lookup("club"); f != nil && f.Changed {
		cfg.ClubName = strings.TrimSpace(f.Value.String())
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
