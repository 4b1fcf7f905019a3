package extract

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"nff-scraper/internal/league"
)

func TestStandingsScenario(t *testing.T) {
	doc := parseHTML(t, page(htmlTable(standingsHeader,
		[]string{"1", "Elvebyen FK", "10", "7", "2", "1", "20", "10", "+10", "23"},
	)))

	got, err := Standings(context.Background(), doc)
	require.NoError(t, err)

	want := []league.TeamStanding{{
		Team: "Elvebyen FK", Played: 10, Wins: 7, Draws: 2, Losses: 1,
		GoalsFor: 20, GoalsAgainst: 10, GoalDiff: 10, Points: 23,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("standings mismatch (-want +got):\n%s", diff)
	}
}

func TestStandingsSkipsBlankTeams(t *testing.T) {
	doc := parseHTML(t, page(htmlTable(standingsHeader,
		[]string{"1", "Elvebyen FK", "3", "3", "0", "0", "9", "1", "+8", "9"},
		[]string{"", "   ", "", "", "", "", "", "", "", ""},
		[]string{"2", "&nbsp;", "3", "0", "0", "3", "1", "9", "-8", "0"},
		[]string{"3", "  Nordbyen\n  IL ", "3", "0", "0", "3", "1", "9", "-8", "0"},
	)))

	got, err := Standings(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Elvebyen FK", got[0].Team)
	require.Equal(t, "Nordbyen IL", got[1].Team)
}

func TestStandingsGoalDiff(t *testing.T) {
	doc := parseHTML(t, page(htmlTable(standingsHeader,
		[]string{"1", "A", "2", "2", "0", "0", "5", "0", "+5", "6"},
		[]string{"2", "B", "2", "0", "0", "2", "0", "5", "-5", "0"},
		[]string{"3", "C", "2", "1", "0", "1", "x", "3", "?", "3"},
	)))

	got, err := Standings(context.Background(), doc)
	require.NoError(t, err)
	for _, row := range got {
		require.Equal(t, row.GoalsFor-row.GoalsAgainst, row.GoalDiff, row.Team)
	}
	require.Equal(t, -5, got[1].GoalDiff)
	require.Equal(t, 0, got[2].GoalsFor)
	require.Equal(t, -3, got[2].GoalDiff)
}

func TestStandingsMalformedNumbers(t *testing.T) {
	doc := parseHTML(t, page(htmlTable(standingsHeader,
		[]string{"1", "A", "", "n/a", "2 kamper", "-", "1 234", "", "", "12 p"},
	)))

	got, err := Standings(context.Background(), doc)
	require.NoError(t, err)
	require.Equal(t, league.TeamStanding{
		Team: "A", Played: 0, Wins: 0, Draws: 2, Losses: 0,
		GoalsFor: 1234, GoalsAgainst: 0, GoalDiff: 1234, Points: 12,
	}, got[0])
}

func TestStandingsPositionalFallback(t *testing.T) {
	doc := parseHTML(t, page(htmlTable(nil,
		[]string{"1", "Elvebyen FK", "10", "7", "2", "1", "20", "10", "+10", "23"},
		[]string{"2", "Nordbyen IL", "10", "6", "2", "2", "18", "12", "+6", "20"},
	)))

	got, err := Standings(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 23, got[0].Points)
	require.Equal(t, 12, got[1].GoalsAgainst)
	require.Equal(t, 6, got[1].GoalDiff)
}

func TestStandingsUnknownHeadersNoTeamsIsEmpty(t *testing.T) {
	// The only table has headers unrelated to standings, so the locator falls
	// back to it; its team column is empty everywhere.
	doc := parseHTML(t, page(htmlTable(
		[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
		[]string{"1", "", "3", "4", "5", "6", "7", "8", "9"},
		[]string{"1", " ", "3", "4", "5", "6", "7", "8", "9"},
	)))

	_, err := Standings(context.Background(), doc)
	var empty *EmptyTableError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, KindStandings, empty.Table)
}

func TestStandingsPositionalTooNarrowForPoints(t *testing.T) {
	doc := parseHTML(t, page(htmlTable(nil,
		[]string{"1", "Elvebyen FK", "10", "7", "2", "1", "20", "10"},
	)))

	_, err := Standings(context.Background(), doc)
	var colErr *ColumnResolutionError
	require.ErrorAs(t, err, &colErr)
	require.Equal(t, []string{ColPoints}, colErr.Missing)
}

func TestStandingsNoTable(t *testing.T) {
	_, err := Standings(context.Background(), parseHTML(t, "<p>vedlikehold</p>"))
	require.ErrorIs(t, err, ErrNoTableFound)
}

func TestNumber(t *testing.T) {
	cases := map[string]int{
		"23":    23,
		" +10 ": 10,
		"-8":    -8,
		"":      0,
		"-":     0,
		"abc":   0,
		"12 p":  12,
		"10-2":  10,
		"--3":   0,
	}
	for in, want := range cases {
		require.Equal(t, want, Number(in), "Number(%q)", in)
	}
}
