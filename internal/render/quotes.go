package render

import (
	_ "embed"
	"encoding/json"
	"strconv"
)

//go:embed quotes.json
var quotesJSON []byte

// Quotes holds the motivational copy printed on weekly and race pages.
type Quotes struct {
	WeeklyQuotes map[string]WeeklyQuote `json:"weekly_quotes"`
	RaceDay      RaceDayQuotes          `json:"race_day"`
}

// WeeklyQuote is the quote shown under a week header.
type WeeklyQuote struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
}

// RaceDayQuotes are the affirmations on the race week page.
type RaceDayQuotes struct {
	PreRace   string `json:"pre_race"`
	StartLine string `json:"start_line"`
}

func loadQuotes() Quotes {
	var q Quotes
	if err := json.Unmarshal(quotesJSON, &q); err != nil {
		// The quotes file is compiled in; a decode failure means a broken
		// build, but pages still render without quotes.
		return Quotes{}
	}
	return q
}

// ForWeek returns the quote for a week number, if one exists.
func (q Quotes) ForWeek(weekNumber int) (WeeklyQuote, bool) {
	quote, ok := q.WeeklyQuotes[strconv.Itoa(weekNumber)]
	return quote, ok
}
