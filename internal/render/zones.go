package render

import (
	"fmt"

	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/styles"
)

var paceZoneOrder = []struct {
	key   string
	label string
}{
	{"easy", "Easy"},
	{"marathon", "Marathon"},
	{"tempo", "Tempo"},
	{"fiveK", "5K"},
	{"interval", "Interval"},
	{"recovery", "Recovery"},
}

var hrZoneOrder = []string{"zone1", "zone2", "zone3", "zone4", "zone5"}

// hrZoneAccents are the fixed indicator colors for zones 1 through 5.
var hrZoneAccents = []styles.RGB{
	styles.WorkoutRecovery,
	styles.WorkoutEasy,
	styles.WorkoutTempo,
	styles.WorkoutIntervals,
	styles.WorkoutRacePace,
}

// drawZonesCard composes the pace and heart rate zone reference card.
func drawZonesCard(c *Canvas, p *plan.Plan) {
	c.StartPage()
	c.TwilightGradient()
	c.Stars(80)

	titleY := styles.Margin + 0.5*styles.Inch
	c.Text(styles.Margin, titleY, "B", styles.SizePageTitle, styles.CyanGlow, "Your Training Zones")

	paceHeaderY := titleY + 0.8*styles.Inch
	c.Text(styles.Margin, paceHeaderY, "B", styles.SizeSectionHeader, styles.NeonPink, "Pace Zones")

	stripWidth := styles.PageWidth - 2*styles.Margin
	stripHeight := 0.5 * styles.Inch

	cursor := paceHeaderY + 0.6*styles.Inch
	for _, zone := range paceZoneOrder {
		data, ok := p.PaceZones[zone.key]
		if !ok {
			continue
		}

		c.RoundedRect(styles.Margin, cursor, stripWidth, stripHeight, styles.StripRadius, styles.StripPurple, 0.8)

		baseline := cursor + stripHeight - 15
		c.Text(styles.Margin+15, baseline, "B", styles.SizeBody, styles.CyanGlow, zone.label)

		var paceText string
		switch {
		case data.Min != "" && data.Max != "":
			paceText = fmt.Sprintf("%s - %s /mile", data.Min, data.Max)
		case data.Min != "":
			paceText = data.Min + " /mile"
		}
		if paceText != "" {
			c.RightAlignedText(styles.PageWidth-styles.Margin-15, baseline, "B", styles.SizeBody, styles.SoftWhite, paceText)
		}

		cursor += stripHeight + 8
	}

	hrHeaderY := cursor + 0.6*styles.Inch
	c.Text(styles.Margin, hrHeaderY, "B", styles.SizeSectionHeader, styles.NeonPink, "Heart Rate Zones")

	cursor = hrHeaderY + 0.6*styles.Inch
	for i, key := range hrZoneOrder {
		data, ok := p.HRZones[key]
		if !ok {
			continue
		}

		c.RoundedRect(styles.Margin, cursor, stripWidth, stripHeight, styles.StripRadius, styles.StripPurple, 0.8)
		c.RoundedRect(styles.Margin+5, cursor+5, 6, stripHeight-10, 3, hrZoneAccents[i], 1)

		baseline := cursor + stripHeight - 15
		name := data.Name
		if name == "" {
			name = fmt.Sprintf("Zone %d", i+1)
		}
		c.Text(styles.Margin+20, baseline, "B", styles.SizeBody, styles.CyanGlow, name)

		if data.MinHR > 0 && data.MaxHR > 0 {
			hrText := fmt.Sprintf("%d-%d bpm (%s)", data.MinHR, data.MaxHR, data.PercentMaxHR)
			c.RightAlignedText(styles.PageWidth-styles.Margin-15, baseline, "", styles.SizeBodySmall, styles.SoftWhite, hrText)
		}

		cursor += stripHeight + 8
	}

	footerY := styles.PageHeight - styles.Margin - 0.3*styles.Inch
	c.CenteredText(footerY, "I", styles.SizeCaption, styles.SoftWhite, "80% of training should be in Zone 2 (Easy/Aerobic)")
}
