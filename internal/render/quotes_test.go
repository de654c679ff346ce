package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadQuotesParsesEmbeddedFile(t *testing.T) {
	t.Parallel()

	q := loadQuotes()
	require.NotEmpty(t, q.WeeklyQuotes)
	require.NotEmpty(t, q.RaceDay.PreRace)
	require.NotEmpty(t, q.RaceDay.StartLine)
}

func TestForWeekLookups(t *testing.T) {
	t.Parallel()

	q := loadQuotes()

	quote, ok := q.ForWeek(1)
	require.True(t, ok)
	require.NotEmpty(t, quote.Quote)

	_, ok = q.ForWeek(99)
	require.False(t, ok)
}

func TestDateFormatting(t *testing.T) {
	t.Parallel()

	require.Equal(t, "April 26, 2026", formatLongDate("2026-04-26"))
	require.Equal(t, "not-a-date", formatLongDate("not-a-date"))

	require.Equal(t, "Sunday, April 26, 2026", formatWeekdayDate("2026-04-26"))

	require.Equal(t, "04/26", formatShortDate("2026-04-26"))
	require.Equal(t, "", formatShortDate("soon"))
}
