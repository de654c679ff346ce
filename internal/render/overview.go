package render

import (
	"fmt"
	"strings"

	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/styles"
)

// stripsPerOverviewPage is how many week strips fit before pagination.
const stripsPerOverviewPage = 12

// drawOverviewPages composes the training overview: one strip per week,
// greedily filled top to bottom with a continuation page every 12 weeks.
func drawOverviewPages(c *Canvas, p *plan.Plan) {
	if len(p.Weeks) == 0 {
		return
	}

	cursor := startOverviewPage(c, "Training Overview")

	totalWeeks := p.Metadata.TotalWeeks
	if totalWeeks == 0 {
		totalWeeks = len(p.Weeks)
	}
	subtitleY := styles.Margin + 0.5*styles.Inch + 0.4*styles.Inch
	c.Text(styles.Margin, subtitleY, "", styles.SizeBody, styles.SoftWhite, fmt.Sprintf("%d weeks to race day", totalWeeks))
	cursor = subtitleY + 0.6*styles.Inch

	stripWidth := styles.PageWidth - 2*styles.Margin
	stripHeight := 0.45 * styles.Inch
	const stripSpacing = 6.0

	for i, week := range p.Weeks {
		if i > 0 && i%stripsPerOverviewPage == 0 {
			cursor = startOverviewPage(c, "Training Overview (cont.)") + 0.8*styles.Inch
		}

		weekNumber := week.WeekNumber
		if weekNumber == 0 {
			weekNumber = i + 1
		}
		phase := week.Phase
		if phase == "" {
			phase = "base"
		}

		stripFill := styles.StripPurple
		if week.IsRecoveryWeek {
			stripFill = styles.DeepPurple
		}
		c.RoundedRect(styles.Margin, cursor, stripWidth, stripHeight, styles.StripRadius, stripFill, 0.85)

		phaseColor := styles.PhaseColor(phase)
		c.RoundedRect(styles.Margin+4, cursor+5, 6, stripHeight-10, 3, phaseColor, 1)

		baseline := cursor + stripHeight - 14
		c.Text(styles.Margin+18, baseline, "B", styles.SizeBodySmall, styles.SoftWhite, fmt.Sprintf("Wk %d", weekNumber))

		phaseLabel := strings.ToUpper(phase)
		if len(phaseLabel) > 3 {
			phaseLabel = phaseLabel[:3]
		}
		if week.IsRecoveryWeek {
			phaseLabel = "REC"
		}
		c.Text(styles.Margin+65, baseline, "B", styles.SizeCaption, phaseColor, phaseLabel)

		c.Text(styles.Margin+105, baseline, "", styles.SizeCaption, styles.SoftWhite, fmt.Sprintf("%smi", formatMiles(week.TotalMileage)))
		c.Text(styles.Margin+150, baseline, "", styles.SizeCaption, styles.CyanGlow, fmt.Sprintf("LR:%smi", formatMiles(week.LongRunDistance())))

		if week.Focus != "" {
			maxFocusWidth := stripWidth - 230
			focus := c.TruncateToFit(week.Focus, "I", styles.SizeCaption, maxFocusWidth, "…")
			c.Text(styles.Margin+210, baseline, "I", styles.SizeCaption, styles.SoftWhite, focus)
		}

		cursor += stripHeight + stripSpacing
	}

	drawPhaseLegend(c)
}

func startOverviewPage(c *Canvas, title string) float64 {
	c.StartPage()
	c.TwilightGradient()
	c.Stars(60)

	titleY := styles.Margin + 0.5*styles.Inch
	c.Text(styles.Margin, titleY, "B", styles.SizePageTitle, styles.CyanGlow, title)
	return titleY
}

func drawPhaseLegend(c *Canvas) {
	legendY := styles.PageHeight - styles.Margin - 0.8*styles.Inch
	c.Text(styles.Margin, legendY, "B", styles.SizeCaption, styles.SoftWhite, "Phases:")

	phases := []struct {
		key   string
		label string
	}{
		{"base", "Base"},
		{"build", "Build"},
		{"peak", "Peak"},
		{"taper", "Taper"},
	}

	x := styles.Margin + 50
	for _, phase := range phases {
		c.Dot(x, legendY-3, 4, styles.PhaseColor(phase.key))
		c.Text(x+10, legendY, "", styles.SizeCaption, styles.SoftWhite, phase.label)
		x += 70
	}
}

// formatMiles prints mileage without a trailing ".0" for whole numbers.
func formatMiles(miles float64) string {
	if miles == float64(int(miles)) {
		return fmt.Sprintf("%d", int(miles))
	}
	return fmt.Sprintf("%.1f", miles)
}
