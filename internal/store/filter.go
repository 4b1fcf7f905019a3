package store

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"nff-scraper/internal/league"
)

// Limit caps the upcoming and played subsequences.
const Limit = 20

// Upcoming returns the first Limit matches that have not started at now.
// A match without a known kickoff counts as upcoming.
func Upcoming(all []league.Match, now time.Time) []league.Match {
	out := make([]league.Match, 0, Limit)
	for _, m := range all {
		if len(out) == Limit {
			break
		}
		if m.Kickoff == nil || m.Kickoff.After(now) {
			out = append(out, m)
		}
	}
	return out
}

// Played returns the last Limit matches with a known result.
func Played(all []league.Match) []league.Match {
	out := make([]league.Match, 0)
	for _, m := range all {
		if m.HasResult() {
			out = append(out, m)
		}
	}
	if len(out) > Limit {
		out = out[len(out)-Limit:]
	}
	return out
}

// ClubMatches returns the matches where club takes part, judged by
// ContainsClub on the home and away names.
func ClubMatches(all []league.Match, club string) []league.Match {
	out := make([]league.Match, 0)
	for _, m := range all {
		if ContainsClub(m.Home, club) || ContainsClub(m.Away, club) {
			out = append(out, m)
		}
	}
	return out
}

// ContainsClub is a case-insensitive substring test. An empty club never
// matches.
func ContainsClub(name, club string) bool {
	fold := cases.Fold()
	club = fold.String(strings.TrimSpace(club))
	if club == "" {
		return false
	}
	return strings.Contains(fold.String(name), club)
}
