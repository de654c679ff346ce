package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/styles"
)

var (
	showTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(styles.NeonPink.Hex()))
	showSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(styles.CyanGlow.Hex())).MarginTop(1)
	showLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	showRecoveryTag  = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.PhaseTaper.Hex()))
)

var showPaceZones = []struct {
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

var showHRZones = []string{"zone1", "zone2", "zone3", "zone4", "zone5"}

func newShowCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <plan.json>",
		Short: "Print a styled summary of a training plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, planPath string) error {
	p, err := plan.Load(planPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, showTitleStyle.Render(p.Metadata.DisplayName()))
	raceLine := p.Metadata.DisplayRaceName()
	if date := showDate(p.Metadata.RaceDate); date != "" {
		raceLine += " on " + date
	}
	fmt.Fprintln(out, raceLine)

	if target := p.Metadata.PredictedFinishTime.Target; target != "" {
		goal := target
		if r := p.Metadata.PredictedFinishTime.Range; r != "" {
			goal += " (" + r + ")"
		}
		fmt.Fprintf(out, "%s %s\n", showLabelStyle.Render("Goal:"), goal)
	}
	if p.Metadata.PlanLevel != "" || p.Metadata.TotalWeeks > 0 {
		fmt.Fprintf(out, "%s %s   %s %d\n",
			showLabelStyle.Render("Level:"), p.Metadata.PlanLevel,
			showLabelStyle.Render("Weeks:"), p.Metadata.TotalWeeks)
	}

	if len(p.PaceZones) > 0 {
		fmt.Fprintln(out, showSectionStyle.Render("Pace Zones"))
		for _, zone := range showPaceZones {
			pz, ok := p.PaceZones[zone.key]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  %-10s %s - %s /mile\n", zone.label, pz.Min, pz.Max)
		}
	}

	if len(p.HRZones) > 0 {
		fmt.Fprintln(out, showSectionStyle.Render("Heart Rate Zones"))
		for i, key := range showHRZones {
			hz, ok := p.HRZones[key]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  Z%d %-10s %d-%d bpm (%s)\n", i+1, hz.Name, hz.MinHR, hz.MaxHR, hz.PercentMaxHR)
		}
	}

	if len(p.Weeks) > 0 {
		fmt.Fprintln(out, showSectionStyle.Render("Weeks"))
		for i, week := range p.Weeks {
			number := week.WeekNumber
			if number == 0 {
				number = i + 1
			}

			phaseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(styles.PhaseColor(week.Phase).Hex()))
			tag := strings.ToUpper(week.Phase)
			if week.IsRecoveryWeek {
				tag = "REC"
			}

			line := fmt.Sprintf("  Week %2d  %-6s %5.1f mi  long %4.1f  %s",
				number, tag, week.TotalMileage, week.LongRunDistance(), week.Focus)
			if week.IsRecoveryWeek {
				fmt.Fprintln(out, showRecoveryTag.Render(line))
			} else {
				fmt.Fprintln(out, phaseStyle.Render(line))
			}
		}
	}

	return nil
}

func showDate(isoDate string) string {
	if isoDate == "" {
		return ""
	}
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return parsed.Format("January 2, 2006")
}
