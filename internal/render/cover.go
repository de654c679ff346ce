package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/styles"
)

const brandTitle = "Reign or Shine"

// drawCoverPage composes the branded cover: starfield background, crown,
// glowing brand mark, then the race details stacked down the page.
func drawCoverPage(c *Canvas, p *plan.Plan) {
	c.StartPage()
	c.TwilightGradient()
	c.Stars(150)

	crownY := 2 * styles.Inch
	c.Crown(styles.PageWidth/2, crownY, 60)

	titleY := crownY + 0.8*styles.Inch
	titleX := (styles.PageWidth - c.StringWidth("B", styles.SizeBrandTitle, brandTitle)) / 2
	c.GlowText(titleX, titleY, "B", styles.SizeBrandTitle, styles.CyanGlow, styles.NeonPink, 2, brandTitle)

	raceY := titleY + 1.2*styles.Inch
	c.CenteredText(raceY, "B", styles.SizePageTitle, styles.NeonPink, p.Metadata.DisplayRaceName())

	cursor := raceY
	if p.Metadata.RaceDate != "" {
		cursor += 0.5 * styles.Inch
		c.CenteredText(cursor, "", styles.SizeSectionHeader, styles.SoftWhite, formatLongDate(p.Metadata.RaceDate))
	}

	target := p.Metadata.PredictedFinishTime.Target
	if target != "" {
		cursor += 1 * styles.Inch
		c.CenteredText(cursor, "B", styles.SizeSectionHeader, styles.CyanGlow, "Goal Time: "+target)
		cursor += 0.8 * styles.Inch
	} else {
		cursor += 1 * styles.Inch
	}

	level := p.Metadata.PlanLevel
	if level == "" {
		level = "moderate"
	}
	totalWeeks := p.Metadata.TotalWeeks
	if totalWeeks == 0 {
		totalWeeks = len(p.Weeks)
	}
	badge := fmt.Sprintf("%d-WEEK %s PLAN", totalWeeks, strings.ToUpper(level))
	c.CenteredText(cursor, "", styles.SizeBody, styles.SoftWhite, badge)

	footerY := styles.PageHeight - styles.Margin - 0.5*styles.Inch
	c.CenteredText(footerY, "I", styles.SizeCaption, styles.SoftWhite, "Generated with Reign or Shine Training")
}

// formatLongDate renders an ISO date as "April 26, 2026"; unparseable input
// passes through untouched.
func formatLongDate(isoDate string) string {
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return parsed.Format("January 2, 2006")
}

// formatWeekdayDate renders an ISO date as "Sunday, April 26, 2026".
func formatWeekdayDate(isoDate string) string {
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return parsed.Format("Monday, January 2, 2006")
}

// formatShortDate renders an ISO date as "04/26"; unparseable input yields "".
func formatShortDate(isoDate string) string {
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return parsed.Format("01/02")
}
