package report

import (
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"nff-scraper/internal/league"
	"nff-scraper/internal/store"
)

// Standings renders the league table. The club's row is marked with "*".
func Standings(w io.Writer, rows []league.TeamStanding, club string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Tabell")
	t.AppendHeader(table.Row{"#", "Lag", "S", "V", "U", "T", "+", "-", "+/-", "Poeng"})
	for i, r := range rows {
		name := r.Team
		if store.ContainsClub(r.Team, club) {
			name = "* " + name
		}
		t.AppendRow(table.Row{i + 1, name, r.Played, r.Wins, r.Draws, r.Losses, r.GoalsFor, r.GoalsAgainst, r.GoalDiff, r.Points})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
		{Number: 10, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// Fixtures renders matches with kickoff shown in loc. Matches without a
// parsed kickoff fall back to the raw date and time text.
func Fixtures(w io.Writer, title string, matches []league.Match, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Avspark", "Hjemmelag", "Bortelag", "Bane", "Resultat"})
	for _, m := range matches {
		kickoff := strings.TrimSpace(m.DateText + " " + m.TimeText)
		if m.Kickoff != nil {
			kickoff = m.Kickoff.In(loc).Format("02.01.2006 15:04")
		}
		t.AppendRow(table.Row{kickoff, m.Home, m.Away, m.Venue, m.Score()})
	}
	if len(matches) == 0 {
		t.AppendRow(table.Row{"ingen kamper", "", "", "", ""})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
