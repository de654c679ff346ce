package render

import (
	"fmt"

	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/styles"
)

var pacingTips = []string{
	"Start conservative - first 5K at easy pace",
	"Settle into marathon pace by mile 6",
	"Stay steady through halfway",
	"Fuel every 45 minutes",
}

var raceChecklist = []struct {
	label       string
	description string
}{
	{"Race day -2", "Lay out all race gear, check weather forecast"},
	{"Race day -1", "Carb-load dinner, hydrate well, sleep early"},
	{"Race morning", "Wake 3hrs before start, light breakfast, arrive early"},
	{"Start line", "Dynamic stretches, stay warm, trust your training"},
}

// drawRaceWeekPage composes the celebratory final page: dense starfield,
// race details, pacing strategy box, and the pre-race checklist.
func drawRaceWeekPage(c *Canvas, p *plan.Plan, quotes Quotes) {
	c.StartPage()
	c.TwilightGradient()
	c.Stars(200)

	crownY := 1.2 * styles.Inch
	c.Crown(styles.PageWidth/2, crownY, 50)

	titleY := crownY + 0.6*styles.Inch
	titleSize := styles.SizePageTitle + 8
	titleX := (styles.PageWidth - c.StringWidth("B", titleSize, "RACE WEEK")) / 2
	c.GlowText(titleX, titleY, "B", titleSize, styles.SoftWhite, styles.NeonPink, 3, "RACE WEEK")

	infoY := titleY + 0.8*styles.Inch
	c.CenteredText(infoY, "B", styles.SizeSectionHeader, styles.CyanGlow, p.Metadata.DisplayRaceName())

	cursor := infoY
	if p.Metadata.RaceDate != "" {
		cursor += 0.4 * styles.Inch
		c.CenteredText(cursor, "", styles.SizeBody, styles.SoftWhite, formatWeekdayDate(p.Metadata.RaceDate))
	}

	affirmation := quotes.RaceDay.PreRace
	if affirmation == "" {
		affirmation = "You've done the work. Now go shine."
	}
	cursor += 0.6 * styles.Inch
	c.CenteredText(cursor, "I", styles.SizeBody, styles.NeonPink, fmt.Sprintf("%q", affirmation))

	strategyY := cursor + 0.8*styles.Inch
	c.Text(styles.Margin, strategyY, "B", styles.SizeSectionHeader, styles.CyanGlow, "Race Day Strategy")

	sectionWidth := styles.PageWidth - 2*styles.Margin
	boxTop := strategyY + 0.4*styles.Inch
	boxHeight := 1.8 * styles.Inch
	c.RoundedRect(styles.Margin, boxTop, sectionWidth, boxHeight, styles.StripRadius, styles.StripPurple, 0.85)

	marathonZone := p.PaceZones["marathon"]
	minPace, maxPace := marathonZone.Min, marathonZone.Max
	if minPace == "" {
		minPace = "9:00"
	}
	if maxPace == "" {
		maxPace = "9:15"
	}
	targetPace := fmt.Sprintf("%s - %s/mile", minPace, maxPace)

	contentY := boxTop + 0.3*styles.Inch
	c.Text(styles.Margin+15, contentY, "B", styles.SizeBody, styles.SoftWhite, "Target Pace:")
	c.Text(styles.Margin+120, contentY, "B", styles.SizeBody, styles.NeonPink, targetPace)

	if target := p.Metadata.PredictedFinishTime.Target; target != "" {
		contentY += 0.3 * styles.Inch
		c.Text(styles.Margin+15, contentY, "B", styles.SizeBody, styles.SoftWhite, "Goal Time:")
		c.Text(styles.Margin+120, contentY, "B", styles.SizeBody, styles.CyanGlow, target)
	}

	contentY += 0.4 * styles.Inch
	for _, tip := range pacingTips {
		c.Text(styles.Margin+15, contentY, "", styles.SizeBodySmall, styles.SoftWhite, "• "+tip)
		contentY += 0.25 * styles.Inch
	}

	checklistY := boxTop + boxHeight + 0.6*styles.Inch
	c.Text(styles.Margin, checklistY, "B", styles.SizeSectionHeader, styles.CyanGlow, "Pre-Race Checklist")

	stripHeight := 0.35 * styles.Inch
	cursor = checklistY + 0.5*styles.Inch
	for _, item := range raceChecklist {
		c.RoundedRect(styles.Margin, cursor, sectionWidth, stripHeight, 6, styles.StripPurple, 0.7)
		c.CheckboxOutline(styles.Margin+10, cursor+stripHeight-20, 12, styles.SoftWhite)

		baseline := cursor + stripHeight - 10
		c.Text(styles.Margin+30, baseline, "B", styles.SizeCaption, styles.NeonPink, item.label)
		c.Text(styles.Margin+110, baseline, "", styles.SizeCaption, styles.SoftWhite, item.description)

		cursor += stripHeight + 5
	}

	finalQuote := quotes.RaceDay.StartLine
	if finalQuote == "" {
		finalQuote = "Reign or shine, you've got this."
	}
	footerY := styles.PageHeight - styles.Margin - 0.5*styles.Inch
	c.CenteredText(footerY, "B", styles.SizeBody, styles.NeonPink, finalQuote)
}
