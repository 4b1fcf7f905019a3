package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Clean collapses runs of whitespace (nbsp included) and trims the result.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var (
	nonNumeric    = regexp.MustCompile(`[^0-9-]`)
	leadingNumber = regexp.MustCompile(`^-?[0-9]+`)
)

// Number reads a loosely formatted integer cell such as "+10" or "23 ".
// Anything that does not start with a number after stripping yields 0.
func Number(s string) int {
	s = nonNumeric.ReplaceAllString(s, "")
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

func cellText(cells *goquery.Selection, idx int) string {
	if idx < 0 || idx >= cells.Length() {
		return ""
	}
	return Clean(cells.Eq(idx).Text())
}
