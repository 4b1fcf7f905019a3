package league

import (
	"fmt"
	"time"
)

// TeamStanding is one row of the league table.
type TeamStanding struct {
	Team   string `json:"team"`
	Played int    `json:"p"`
	Wins   int    `json:"v"`
	Draws  int    `json:"u"`
	Losses int    `json:"t"`
	// goals for / against
	GoalsFor     int `json:"gm"`
	GoalsAgainst int `json:"ga"`
	GoalDiff     int `json:"gd"`
	Points       int `json:"pts"`
}

// Match is one fixture. Kickoff is nil when the date/time text could not be
// parsed, HomeGoals/AwayGoals are nil until a result is known.
type Match struct {
	DateText  string     `json:"dateText"`
	TimeText  string     `json:"timeText"`
	Kickoff   *time.Time `json:"kickoff"`
	Home      string     `json:"home"`
	Away      string     `json:"away"`
	Venue     string     `json:"venue"`
	HomeGoals *int       `json:"homeGoals"`
	AwayGoals *int       `json:"awayGoals"`
}

// HasResult reports whether both goal counts are known.
func (m Match) HasResult() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

func (m Match) Score() string {
	if !m.HasResult() {
		return ""
	}
	return fmt.Sprintf("%d-%d", *m.HomeGoals, *m.AwayGoals)
}

// Goals returns a pointer to n, for building matches with a known result.
func Goals(n int) *int {
	return &n
}
