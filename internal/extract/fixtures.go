package extract

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"

	"nff-scraper/internal/league"
)

const (
	ColDate   = "date"
	ColTime   = "time"
	ColHome   = "home"
	ColAway   = "away"
	ColVenue  = "venue"
	ColResult = "result"
)

// typically: ["runde", "dato", "tid", "hjemmelag", "bortelag", "bane", "resultat"]
var FixturesFields = []Field{
	{Name: ColDate, Synonyms: []string{"dato", "dag"}, Position: 1},
	{Name: ColTime, Synonyms: []string{"tid", "kl"}, Position: 2},
	{Name: ColHome, Synonyms: []string{"hjemmelag", "hjemme"}, Position: 3},
	{Name: ColAway, Synonyms: []string{"bortelag", "borte"}, Position: 4},
	{Name: ColVenue, Synonyms: []string{"bane", "arena", "sted"}, Position: 5, Optional: true},
	{Name: ColResult, Synonyms: []string{"resultat", "res"}, Position: 6, Optional: true},
}

var resultPattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)

// Fixtures locates the fixture list in doc and decodes it. Kickoff times are
// read as wall-clock time in loc.
func Fixtures(ctx context.Context, doc *goquery.Document, loc *time.Location) ([]league.Match, error) {
	t, err := Locate(doc, FixturesTokens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KindFixtures, err)
	}
	cols, err := ResolveColumns(KindFixtures, t, FixturesFields)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "fixtures table located", "strategy", t.Strategy, "columns", cols)
	return DecodeFixtures(ctx, t, cols, loc)
}

// DecodeFixtures turns the rows of t into matches. Short rows (footers,
// round separators) and rows without any team are dropped.
func DecodeFixtures(ctx context.Context, t Table, cols Columns, loc *time.Location) ([]league.Match, error) {
	resultCol := cols.Index(ColResult)
	minCells := 5
	if resultCol != NotFound {
		minCells = 6
	}

	rows := t.Rows()
	out := make([]league.Match, 0, len(rows))
	for _, tr := range rows {
		tds := cells(tr)
		if tds.Length() < minCells {
			continue
		}

		m := league.Match{
			DateText: cellText(tds, cols.Index(ColDate)),
			TimeText: cellText(tds, cols.Index(ColTime)),
			Home:     cellText(tds, cols.Index(ColHome)),
			Away:     cellText(tds, cols.Index(ColAway)),
			Venue:    cellText(tds, cols.Index(ColVenue)),
		}
		if m.Home == "" && m.Away == "" {
			continue
		}
		if resultCol != NotFound {
			m.HomeGoals, m.AwayGoals = ParseResult(cellText(tds, resultCol))
		}
		if kickoff, ok := ParseKickoff(m.DateText, m.TimeText, loc); ok {
			m.Kickoff = &kickoff
		} else {
			slog.DebugContext(ctx, "unparseable kickoff", "date", m.DateText, "time", m.TimeText, "home", m.Home, "away", m.Away)
		}
		out = append(out, m)
	}

	if len(out) == 0 {
		return nil, &EmptyTableError{Table: KindFixtures}
	}
	return out, nil
}

// ParseResult reads a score like "3 - 1". Both goals are nil when the text
// holds no score.
func ParseResult(s string) (home, away *int) {
	m := resultPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, nil
	}
	a, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, nil
	}
	return &h, &a
}
