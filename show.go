package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nff-scraper/internal/report"
	"nff-scraper/internal/store"
)

var showAll bool

func init() {
	showCmd.Flags().String("out", "", "JSON file to read (overrides config and NFF_OUTPUT).")
	showCmd.Flags().String("club", "", "Club to highlight (overrides config and CLUB_NAME).")
	showCmd.Flags().BoolVar(&showAll, "all", false, "List every match instead of the club's.")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [--all]",
	Short: "Prints the standings and fixtures stored in the output file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		doc, err := store.Load(cfg.Output)
		if err != nil {
			return err
		}
		if len(doc) == 0 {
			return fmt.Errorf("%s does not exist yet, run fetch first", cfg.Output)
		}
		snap, err := doc.Snapshot()
		if err != nil {
			return err
		}

		report.Standings(os.Stdout, snap.Table, cfg.ClubName)
		if showAll {
			report.Fixtures(os.Stdout, "Kamper", snap.Matches.All, loc)
			return nil
		}
		report.Fixtures(os.Stdout, "Kommende kamper "+cfg.ClubName, store.Upcoming(snap.MyMatches, time.Now()), loc)
		report.Fixtures(os.Stdout, "Spilte kamper "+cfg.ClubName, store.Played(snap.MyMatches), loc)
		return nil
	},
}
