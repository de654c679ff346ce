package coach

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reignorshine/plansmith/internal/plan"
)

func TestBuildPromptSubstitutesAthleteData(t *testing.T) {
	t.Parallel()

	intake := &plan.Intake{
		Email:      "alex.runner@example.com",
		Goal:       "moderate",
		TargetTime: "3:55:00",
		Availability: plan.Availability{
			RunningDays:         []string{"monday", "wednesday", "saturday"},
			StrengthDays:        []string{"tuesday"},
			PreferredLongRunDay: "saturday",
		},
		BlockedDates: []plan.BlockedDate{
			{Type: "rest", StartDate: "2026-02-10", EndDate: "2026-02-12", Reason: "travel"},
			{Type: "cross-training", StartDate: "2026-03-01", EndDate: "2026-03-03"},
		},
	}

	now := time.Date(2026, 1, 24, 9, 0, 0, 0, time.UTC)
	prompt, err := BuildPrompt(intake, now)
	require.NoError(t, err)

	require.Contains(t, prompt, "Today's date: 2026-01-24")
	require.Contains(t, prompt, "monday, wednesday, saturday")
	require.Contains(t, prompt, "Preferred long run day: saturday")
	require.Contains(t, prompt, "2026-02-10 to 2026-02-12 (travel)")
	require.Contains(t, prompt, "2026-03-01 to 2026-03-03 (N/A)")
	require.Contains(t, prompt, "alex.runner@example.com")
}

func TestBuildPromptAppliesScheduleDefaults(t *testing.T) {
	t.Parallel()

	prompt, err := BuildPrompt(&plan.Intake{}, time.Now())
	require.NoError(t, err)

	require.Contains(t, prompt, "monday, tuesday, wednesday, friday, saturday, sunday")
	require.Contains(t, prompt, "tuesday, thursday, saturday")
	require.Contains(t, prompt, "Preferred long run day: sunday")
	require.Contains(t, prompt, "Blocked dates (full rest, no training): None")
}

func TestBuildPromptRejectsNilIntake(t *testing.T) {
	t.Parallel()

	_, err := BuildPrompt(nil, time.Now())
	require.Error(t, err)
}

func TestFormatBlockedDatesFiltersByType(t *testing.T) {
	t.Parallel()

	dates := []plan.BlockedDate{
		{Type: "rest", StartDate: "2026-02-10", EndDate: "2026-02-12", Reason: "travel"},
		{Type: "Cross-Training", StartDate: "2026-03-01", EndDate: "2026-03-03", Reason: "ski trip"},
	}

	require.Equal(t, "2026-02-10 to 2026-02-12 (travel)", formatBlockedDates(dates, "rest"))
	require.Equal(t, "2026-03-01 to 2026-03-03 (ski trip)", formatBlockedDates(dates, "cross-training"))
	require.Equal(t, "None", formatBlockedDates(nil, "rest"))
}

func TestSystemPromptCarriesGuidesAndExample(t *testing.T) {
	t.Parallel()

	system := SystemPrompt()

	require.Contains(t, system, "expert marathon coach")
	require.Contains(t, system, "periodization.md")
	require.Contains(t, system, "pace-zones.md")
	require.Contains(t, system, "availability-scheduling.md")
	require.Contains(t, system, "```json")
	require.Contains(t, system, "Output ONLY valid JSON")
	require.LessOrEqual(t, len(system), exampleLimit+20000)
}
