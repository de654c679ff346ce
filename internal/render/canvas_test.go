package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reignorshine/plansmith/internal/styles"
)

func TestTruncateToFitLeavesShortTextAlone(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	text := "Easy aerobic miles"
	require.Equal(t, text, c.TruncateToFit(text, "I", styles.SizeCaption, 400, "..."))
}

func TestTruncateToFitAddsEllipsisAndFits(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	text := strings.Repeat("steady aerobic effort ", 10)
	const maxWidth = 120.0

	got := c.TruncateToFit(text, "I", styles.SizeCaption, maxWidth, "...")
	require.True(t, strings.HasSuffix(got, "..."))
	require.Less(t, len(got), len(text))
	require.LessOrEqual(t, c.StringWidth("I", styles.SizeCaption, got), maxWidth)
}

func TestTruncateToFitHonorsEllipsisChoice(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	text := strings.Repeat("shed fatigue and stay sharp ", 10)
	const maxWidth = 120.0

	got := c.TruncateToFit(text, "I", styles.SizeCaption, maxWidth, "…")
	require.True(t, strings.HasSuffix(got, "…"))
	require.LessOrEqual(t, c.StringWidth("I", styles.SizeCaption, got), maxWidth)
}

func TestTruncateToFitTinyWidthDegradesToEllipsis(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	got := c.TruncateToFit("unfittable", "", styles.SizeBody, 1, "...")
	require.Equal(t, "...", got)
}

func TestStringWidthGrowsWithSize(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	small := c.StringWidth("", styles.SizeCaption, "Eugene Marathon")
	large := c.StringWidth("", styles.SizePageTitle, "Eugene Marathon")
	require.Greater(t, large, small)
}

func TestPageCountTracksStartedPages(t *testing.T) {
	t.Parallel()

	c := NewCanvas()
	require.Zero(t, c.PageCount())

	c.StartPage()
	c.TwilightGradient()
	c.Stars(10)
	c.StartPage()
	require.Equal(t, 2, c.PageCount())
	require.NoError(t, c.Err())
}
