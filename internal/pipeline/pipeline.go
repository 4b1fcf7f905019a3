package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"nff-scraper/internal/extract"
	"nff-scraper/internal/store"
)

// Fetcher retrieves and parses one HTML page.
type Fetcher interface {
	Document(ctx context.Context, name, url string) (*goquery.Document, error)
}

type Options struct {
	StandingsURL string
	FixturesURL  string
	ClubName     string
	Output       string
	Location     *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

type Result struct {
	Snapshot store.Snapshot
	Output   string
}

// Run fetches and decodes the standings and fixtures pages and merges the
// result into the output document. Nothing is written unless both pages
// decode.
func Run(ctx context.Context, f Fetcher, opts Options) (Result, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	standingsDoc, err := f.Document(ctx, "tabell", opts.StandingsURL)
	if err != nil {
		return Result{}, err
	}
	table, err := extract.Standings(ctx, standingsDoc)
	if err != nil {
		return Result{}, fmt.Errorf("standings page: %w", err)
	}

	fixturesDoc, err := f.Document(ctx, "kamper", opts.FixturesURL)
	if err != nil {
		return Result{}, err
	}
	matches, err := extract.Fixtures(ctx, fixturesDoc, opts.Location)
	if err != nil {
		return Result{}, fmt.Errorf("fixtures page: %w", err)
	}

	snap := store.Build(table, matches, opts.ClubName, now())

	old, err := store.Load(opts.Output)
	if err != nil {
		return Result{}, fmt.Errorf("read existing output: %w", err)
	}
	next, err := store.Merge(old, snap)
	if err != nil {
		return Result{}, err
	}
	if err := store.Save(opts.Output, next); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}

	slog.InfoContext(ctx, "saved table and matches",
		"table", len(snap.Table),
		"matches", len(snap.Matches.All),
		"upcoming", len(snap.Matches.Upcoming),
		"played", len(snap.Matches.Played),
		"club", len(snap.MyMatches),
		"path", opts.Output,
	)
	return Result{Snapshot: snap, Output: opts.Output}, nil
}
