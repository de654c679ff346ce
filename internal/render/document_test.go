package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reignorshine/plansmith/internal/logger"
	"github.com/reignorshine/plansmith/internal/plan"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)
	return New(log)
}

func testPlan(weeks int, withRaceWeek bool) *plan.Plan {
	p := &plan.Plan{
		Metadata: plan.Metadata{
			PlanName:            "Eugene Moderate",
			RaceName:            "Eugene Marathon",
			RaceDate:            "2026-04-26",
			PlanLevel:           "moderate",
			TotalWeeks:          weeks,
			PredictedFinishTime: plan.FinishTime{Target: "3:55:00"},
		},
		PaceZones: map[string]plan.PaceZone{
			"easy":     {Min: "9:45", Max: "10:30"},
			"marathon": {Min: "8:55", Max: "9:10"},
		},
		HRZones: map[string]plan.HRZone{
			"zone2": {Name: "Aerobic", MinHR: 118, MaxHR: 137, PercentMaxHR: "60-70%"},
		},
	}

	for i := 1; i <= weeks; i++ {
		week := plan.Week{
			WeekNumber:     i,
			Phase:          "base",
			WeeksUntilRace: weeks - i,
			Focus:          fmt.Sprintf("Week %d focus", i),
			TotalMileage:   24,
			TotalHours:     4.5,
			StrengthDays:   2,
			Days: map[string]plan.Day{
				"monday": {
					Date:    "2026-01-12",
					Running: &plan.Running{Type: "easy", Title: "Easy Run", Description: "Conversational pace", TotalDistance: 4, EstimatedDuration: 40, HRZone: "Z2"},
				},
				"tuesday": {
					Running:  &plan.Running{Type: "rest", Title: "Rest Day"},
					Strength: &plan.Strength{Scheduled: true, Type: "full_body", Duration: 45},
				},
				"saturday": {
					Running: &plan.Running{Type: "long", Title: "Long Run", TotalDistance: 8 + float64(i), EstimatedDuration: 90, HRZone: "Z2"},
				},
			},
		}
		if withRaceWeek && i == weeks {
			week.Phase = "taper"
			week.WeeksUntilRace = 0
		}
		p.Weeks = append(p.Weeks, week)
	}

	return p
}

func TestRenderWritesPDFWithExpectedPageCount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "plan.pdf")

	// cover + zones + overview + 12 weeks + race week
	pages, err := testRenderer(t).Render(testPlan(12, true), out)
	require.NoError(t, err)
	require.Equal(t, 16, pages)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, len(data) > 1000)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderSkipsRaceWeekPageWithoutFinalTaper(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "plan.pdf")

	pages, err := testRenderer(t).Render(testPlan(4, false), out)
	require.NoError(t, err)
	// cover + zones + overview + 4 weeks
	require.Equal(t, 7, pages)
}

func TestRenderPaginatesLongOverview(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "plan.pdf")

	// 15 weeks need two overview pages (12 strips per page).
	pages, err := testRenderer(t).Render(testPlan(15, true), out)
	require.NoError(t, err)
	require.Equal(t, 20, pages)
}

func TestRenderHandlesSparsePlan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "plan.pdf")

	pages, err := testRenderer(t).Render(&plan.Plan{}, out)
	require.NoError(t, err)
	// cover + zones; no weeks means no overview, detail, or race pages.
	require.Equal(t, 2, pages)
}

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	p := &plan.Plan{Metadata: plan.Metadata{PlanName: "Eugene Spring/Moderate Block"}}
	now := time.Date(2026, 1, 24, 10, 0, 0, 0, time.UTC)

	got := DefaultOutputPath("output", p, now)
	require.Equal(t, filepath.Join("output", "eugene-spring-moderate-block-20260124.pdf"), got)
}

func TestDefaultOutputPathFallsBackToGenericName(t *testing.T) {
	t.Parallel()

	got := DefaultOutputPath("out", &plan.Plan{}, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.Equal(t, filepath.Join("out", "training-plan-20260302.pdf"), got)
}
