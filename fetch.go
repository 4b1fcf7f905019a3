package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"nff-scraper/internal/fetch"
	"nff-scraper/internal/pipeline"
	"nff-scraper/internal/report"
	"nff-scraper/internal/store"
)

var quiet bool

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().String("out", "", "Output JSON file (overrides config and NFF_OUTPUT).")
	cmd.Flags().String("club", "", "Club name substring for myMatches (overrides config and CLUB_NAME).")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the summary tables.")
}

func init() {
	addFetchFlags(fetchCmd)
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [--out <path>] [--club <name>]",
	Short: "Fetches standings and fixtures and merges them into the output file.",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	client := fetch.NewClient(fetch.Options{
		UserAgent: cfg.UserAgent,
		Timeout:   timeout,
		DebugDir:  cfg.DebugHTMLDir,
	})
	res, err := pipeline.Run(cmd.Context(), client, pipeline.Options{
		StandingsURL: cfg.StandingsURL,
		FixturesURL:  cfg.FixturesURL,
		ClubName:     cfg.ClubName,
		Output:       cfg.Output,
		Location:     loc,
	})
	if err != nil {
		return err
	}

	if !quiet {
		printSummary(res.Snapshot, cfg.ClubName, loc)
	}
	return nil
}

func printSummary(snap store.Snapshot, club string, loc *time.Location) {
	report.Standings(os.Stdout, snap.Table, club)
	report.Fixtures(os.Stdout, "Kommende kamper "+club, store.Upcoming(snap.MyMatches, time.Now()), loc)
}
