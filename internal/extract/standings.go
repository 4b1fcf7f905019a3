package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"nff-scraper/internal/league"
)

const (
	ColTeam         = "team"
	ColPlayed       = "played"
	ColWins         = "wins"
	ColDraws        = "draws"
	ColLosses       = "losses"
	ColGoalsFor     = "goalsFor"
	ColGoalsAgainst = "goalsAgainst"
	ColPoints       = "points"
)

// typically: ["#", "lag", "s", "v", "u", "t", "+", "-", "+/-", "poeng"]
var StandingsFields = []Field{
	{Name: ColTeam, Synonyms: []string{"lag"}, Position: 1},
	{Name: ColPlayed, Synonyms: []string{"s", "spilt", "kamper"}, Position: 2},
	{Name: ColWins, Synonyms: []string{"v", "seire"}, Position: 3},
	{Name: ColDraws, Synonyms: []string{"u", "uavgjort"}, Position: 4},
	{Name: ColLosses, Synonyms: []string{"t", "tap"}, Position: 5},
	{Name: ColGoalsFor, Synonyms: []string{"+", "mål+", "for"}, Position: 6},
	{Name: ColGoalsAgainst, Synonyms: []string{"-", "mål-", "mot"}, Position: 7},
	{Name: ColPoints, Synonyms: []string{"poeng", "p"}, Position: 1, FromEnd: true},
}

// Standings locates the league table in doc and decodes it.
func Standings(ctx context.Context, doc *goquery.Document) ([]league.TeamStanding, error) {
	t, err := Locate(doc, StandingsTokens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KindStandings, err)
	}
	cols, err := ResolveColumns(KindStandings, t, StandingsFields)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "standings table located", "strategy", t.Strategy, "columns", cols)
	return DecodeStandings(ctx, t, cols)
}

// DecodeStandings turns every row with a team name into a TeamStanding.
func DecodeStandings(ctx context.Context, t Table, cols Columns) ([]league.TeamStanding, error) {
	rows := t.Rows()
	out := make([]league.TeamStanding, 0, len(rows))
	for _, tr := range rows {
		tds := cells(tr)
		team := cellText(tds, cols.Index(ColTeam))
		if team == "" {
			continue
		}
		num := func(name string) int {
			return Number(cellText(tds, cols.Index(name)))
		}
		gm := num(ColGoalsFor)
		ga := num(ColGoalsAgainst)
		out = append(out, league.TeamStanding{
			Team:         team,
			Played:       num(ColPlayed),
			Wins:         num(ColWins),
			Draws:        num(ColDraws),
			Losses:       num(ColLosses),
			GoalsFor:     gm,
			GoalsAgainst: ga,
			GoalDiff:     gm - ga,
			Points:       num(ColPoints),
		})
	}

	if skipped := len(rows) - len(out); skipped > 0 {
		slog.DebugContext(ctx, "skipped standings rows without team", "skipped", skipped)
	}
	if len(out) == 0 {
		return nil, &EmptyTableError{Table: KindStandings}
	}
	return out, nil
}
