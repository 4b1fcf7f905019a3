package extract

import (
	"regexp"
	"time"
)

type kickoffLayout struct {
	shape  *regexp.Regexp
	layout string
}

// The shape regexps make the parse strict: time.Parse alone accepts a one
// digit hour for "15".
var kickoffLayouts = []kickoffLayout{
	// DD.MM.YYYY HH:mm
	{regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4} \d{2}:\d{2}$`), "02.01.2006 15:04"},
	// DD.MM.YYYY H:mm
	{regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4} \d:\d{2}$`), "02.01.2006 15:04"},
	// YYYY-MM-DD HH:mm
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`), "2006-01-02 15:04"},
}

// ParseKickoff reads the date and time cells of a fixture as wall-clock time
// in loc and returns the instant in UTC. Runs of whitespace count as one
// space. ok is false when no layout matches.
func ParseKickoff(dateText, timeText string, loc *time.Location) (kickoff time.Time, ok bool) {
	raw := Clean(dateText + " " + timeText)
	if loc == nil {
		loc = time.UTC
	}
	for _, l := range kickoffLayouts {
		if !l.shape.MatchString(raw) {
			continue
		}
		t, err := time.ParseInLocation(l.layout, raw, loc)
		if err != nil {
			continue
		}
		return t.UTC(), true
	}
	return time.Time{}, false
}
