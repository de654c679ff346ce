package render

import (
	"fmt"
	"strings"

	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/styles"
)

// drawWeekDetailPage composes a single week: header with phase badge and
// countdown, optional quote, weekly totals bar, then one strip per scheduled
// day in Monday-to-Sunday order.
func drawWeekDetailPage(c *Canvas, week *plan.Week, weekNumber int, quotes Quotes) {
	c.StartPage()
	c.TwilightGradient()
	c.Stars(50)

	phase := week.Phase
	if phase == "" {
		phase = "base"
	}
	phaseColor := styles.PhaseColor(phase)

	titleY := styles.Margin + 0.5*styles.Inch
	c.Text(styles.Margin, titleY, "B", styles.SizePageTitle, phaseColor, fmt.Sprintf("Week %d", weekNumber))

	badgeText := strings.ToUpper(phase)
	badgeColor := phaseColor
	if week.IsRecoveryWeek {
		badgeText = "RECOVERY"
		badgeColor = styles.NeonPink
	}
	c.Text(styles.Margin+120, titleY-5, "B", styles.SizeBody, badgeColor, badgeText)

	countdown := fmt.Sprintf("%d weeks to go", week.WeeksUntilRace)
	c.Text(styles.PageWidth-styles.Margin-100, titleY-5, "", styles.SizeBody, styles.SoftWhite, countdown)

	cursor := titleY + 0.6*styles.Inch
	if quote, ok := quotes.ForWeek(weekNumber); ok && quote.Quote != "" {
		quoteY := titleY + 0.4*styles.Inch
		c.CenteredText(quoteY, "I", styles.SizeBody, styles.NeonPink, fmt.Sprintf("%q", quote.Quote))
		cursor = quoteY + 0.5*styles.Inch
	}

	barTop := cursor
	barHeight := 0.4 * styles.Inch
	c.RoundedRect(styles.Margin, barTop, styles.PageWidth-2*styles.Margin, barHeight, styles.StripRadius, styles.DeepPurple, 0.9)

	barBaseline := barTop + barHeight - 12
	c.Text(styles.Margin+15, barBaseline, "B", styles.SizeBodySmall, styles.SoftWhite, fmt.Sprintf("Total: %s miles", formatMiles(week.TotalMileage)))
	c.Text(styles.Margin+150, barBaseline, "B", styles.SizeBodySmall, styles.SoftWhite, fmt.Sprintf("~%s hours", formatMiles(week.TotalHours)))
	c.Text(styles.Margin+280, barBaseline, "B", styles.SizeBodySmall, styles.SoftWhite, fmt.Sprintf("Strength: %dx", week.StrengthDays))

	if week.Focus != "" {
		const maxFocusWidth = 200.0
		focus := c.TruncateToFit(week.Focus, "I", styles.SizeBodySmall, maxFocusWidth, "...")
		c.Text(styles.PageWidth-styles.Margin-maxFocusWidth-15, barBaseline, "I", styles.SizeBodySmall, styles.CyanGlow, focus)
	}

	stripWidth := styles.PageWidth - 2*styles.Margin
	stripHeight := 0.7 * styles.Inch
	cursor = barTop + barHeight + 0.3*styles.Inch

	for i, dayKey := range plan.DayOrder {
		day, ok := week.Days[dayKey]
		// An empty day object is unscheduled, same as a missing key.
		if !ok || day == (plan.Day{}) {
			continue
		}

		workoutType := day.WorkoutType()
		workoutColor := styles.WorkoutColor(workoutType)

		c.RoundedRect(styles.Margin, cursor, stripWidth, stripHeight, styles.StripRadius, styles.StripPurple, 0.8)
		c.RoundedRect(styles.Margin+4, cursor+8, 6, stripHeight-16, 3, workoutColor, 1)

		upper := cursor + stripHeight/2 - 8
		lower := cursor + stripHeight/2 + 8

		c.Text(styles.Margin+18, upper, "B", styles.SizeBody, styles.SoftWhite, plan.DayLabels[i])
		if date := formatShortDate(day.Date); date != "" {
			c.Text(styles.Margin+18, lower, "", styles.SizeCaption, styles.SoftWhite, date)
		}

		title := "Rest Day"
		if day.Running != nil && day.Running.Title != "" {
			title = day.Running.Title
		}
		c.Text(styles.Margin+65, upper, "B", styles.SizeBody, workoutColor, title)

		if day.Running != nil && day.Running.TotalDistance > 0 {
			distText := fmt.Sprintf("%s mi", formatMiles(day.Running.TotalDistance))
			if day.Running.EstimatedDuration > 0 {
				distText += fmt.Sprintf(" | ~%d min", day.Running.EstimatedDuration)
			}
			c.Text(styles.Margin+65, lower, "", styles.SizeBodySmall, styles.SoftWhite, distText)
		}

		if day.Running != nil && day.Running.HRZone != "" {
			c.Text(styles.PageWidth-styles.Margin-80, upper, "", styles.SizeCaption, styles.CyanGlow, day.Running.HRZone)
		}

		if day.Strength != nil && day.Strength.Scheduled {
			strengthType := day.Strength.Type
			if strengthType == "" {
				strengthType = "strength"
			}
			strengthText := fmt.Sprintf("+ %s %dmin", strings.ReplaceAll(strengthType, "_", " "), day.Strength.Duration)
			c.Text(styles.PageWidth-styles.Margin-150, lower, "", styles.SizeCaption, styles.NeonPink, strengthText)
		}

		if day.Running != nil && day.Running.Description != "" && workoutType != "rest" {
			desc := c.TruncateToFit(day.Running.Description, "I", styles.SizeCaption, stripWidth-100, "...")
			c.Text(styles.Margin+65, cursor+stripHeight-10, "I", styles.SizeCaption, styles.SoftWhite, desc)
		}

		cursor += stripHeight + 6
	}
}
