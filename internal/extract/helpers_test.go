package extract

import (
	"fmt"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseHTML(t testing.TB, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

// htmlTable renders a table with a thead when header is non-nil.
func htmlTable(header []string, rows ...[]string) string {
	var b strings.Builder
	b.WriteString("<table>")
	if header != nil {
		b.WriteString("<thead><tr>")
		for _, h := range header {
			fmt.Fprintf(&b, "<th>%s</th>", h)
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, r := range rows {
		b.WriteString("<tr>")
		for _, c := range r {
			fmt.Fprintf(&b, "<td>%s</td>", c)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func page(tables ...string) string {
	return "<html><body>" + strings.Join(tables, "<p>filler</p>") + "</body></html>"
}
