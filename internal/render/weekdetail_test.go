package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reignorshine/plansmith/internal/plan"
)

// renderWeekPage draws a single week detail page with pinned document dates
// so two renders of the same content produce identical bytes.
func renderWeekPage(t *testing.T, days map[string]plan.Day) []byte {
	t.Helper()

	c := NewCanvas()
	pinned := time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	c.pdf.SetCreationDate(pinned)
	c.pdf.SetModificationDate(pinned)

	week := &plan.Week{
		WeekNumber:     3,
		Phase:          "build",
		WeeksUntilRace: 10,
		TotalMileage:   28,
		TotalHours:     5,
		StrengthDays:   2,
		Days:           days,
	}
	drawWeekDetailPage(c, week, 3, Quotes{})
	require.NoError(t, c.Err())

	var buf bytes.Buffer
	require.NoError(t, c.pdf.Output(&buf))
	return buf.Bytes()
}

func TestWeekDetailSkipsEmptyDayEntries(t *testing.T) {
	t.Parallel()

	scheduled := map[string]plan.Day{
		"monday": {
			Date:    "2026-01-12",
			Running: &plan.Running{Type: "easy", Title: "Easy Run", TotalDistance: 4},
		},
	}
	withEmptyDay := map[string]plan.Day{
		"monday":  scheduled["monday"],
		"tuesday": {},
	}

	// An empty day object draws nothing, so the page matches one rendered
	// without the key at all.
	require.Equal(t, renderWeekPage(t, scheduled), renderWeekPage(t, withEmptyDay))
}
