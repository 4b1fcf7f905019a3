package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy says how the columns of a located table are resolved.
type Strategy int

const (
	// HeaderBased resolves columns by matching header labels.
	HeaderBased Strategy = iota
	// PositionalFallback assumes the standard column layout.
	PositionalFallback
)

func (s Strategy) String() string {
	switch s {
	case HeaderBased:
		return "header"
	case PositionalFallback:
		return "positional"
	}
	return "unknown"
}

// Table is a located table element. Headers is nil when Strategy is
// PositionalFallback.
type Table struct {
	Selection *goquery.Selection
	Headers   []string
	Strategy  Strategy
}

var (
	StandingsTokens = []string{"lag", "poeng", "s", "v", "u", "t", "+", "-", "+/-"}
	FixturesTokens  = []string{"dato", "tid", "hjemmelag", "bortelag", "bane", "resultat"}
)

// Locate picks the first table whose header row carries at least half of
// the expected tokens. When none does, the first table of the document is
// returned with PositionalFallback.
func Locate(doc *goquery.Document, expected []string) (Table, error) {
	tables := doc.Find("table")
	if tables.Length() == 0 {
		return Table{}, ErrNoTableFound
	}

	need := (len(expected) + 1) / 2
	var found *Table
	tables.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		headers := HeaderTokens(sel)
		if len(headers) == 0 {
			return true
		}
		if headerHits(headers, expected) >= need {
			found = &Table{Selection: sel, Headers: headers, Strategy: HeaderBased}
			return false
		}
		return true
	})
	if found != nil {
		return *found, nil
	}

	return Table{Selection: tables.First(), Strategy: PositionalFallback}, nil
}

// HeaderTokens returns the lowercased, whitespace-collapsed header labels of
// a table: the cells of its thead, or of a leading row made only of th.
func HeaderTokens(table *goquery.Selection) []string {
	cells := table.Find("thead tr").First().ChildrenFiltered("th, td")
	if cells.Length() == 0 {
		first := table.Find("tr").First()
		if first.ChildrenFiltered("td").Length() > 0 {
			return nil
		}
		cells = first.ChildrenFiltered("th")
	}
	if cells.Length() == 0 {
		return nil
	}

	headers := make([]string, 0, cells.Length())
	cells.Each(func(_ int, c *goquery.Selection) {
		headers = append(headers, strings.ToLower(Clean(c.Text())))
	})
	return headers
}

func headerHits(headers, expected []string) int {
	hits := 0
	for _, want := range expected {
		for _, h := range headers {
			if h == want || strings.Contains(h, want) {
				hits++
				break
			}
		}
	}
	return hits
}

// Rows returns the data rows of the table, i.e. rows with at least one td.
func (t Table) Rows() []*goquery.Selection {
	trs := t.Selection.Find("tbody tr")
	if trs.Length() == 0 {
		trs = t.Selection.Find("tr")
	}
	var rows []*goquery.Selection
	trs.Each(func(_ int, tr *goquery.Selection) {
		if tr.ChildrenFiltered("td").Length() == 0 {
			return
		}
		rows = append(rows, tr)
	})
	return rows
}

// Width is the cell count of the widest row.
func (t Table) Width() int {
	width := 0
	t.Selection.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if n := tr.ChildrenFiltered("th, td").Length(); n > width {
			width = n
		}
	})
	return width
}

func cells(tr *goquery.Selection) *goquery.Selection {
	return tr.ChildrenFiltered("th, td")
}
