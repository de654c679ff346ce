package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongRunDistancePicksLongestLongEffort(t *testing.T) {
	t.Parallel()

	week := Week{Days: map[string]Day{
		"monday":    {Running: &Running{Type: "easy", TotalDistance: 6}},
		"wednesday": {Running: &Running{Type: "progression", TotalDistance: 9}},
		"saturday":  {Running: &Running{Type: "long", TotalDistance: 16}},
		"sunday":    {Running: &Running{Type: "race_pace", TotalDistance: 8}},
	}}

	require.InDelta(t, 16.0, week.LongRunDistance(), 0.001)
}

func TestLongRunDistanceIgnoresShortEfforts(t *testing.T) {
	t.Parallel()

	week := Week{Days: map[string]Day{
		"tuesday": {Running: &Running{Type: "intervals", TotalDistance: 7}},
	}}

	require.Zero(t, week.LongRunDistance())
}

func TestRaceWeekPicksFinalTaperWeek(t *testing.T) {
	t.Parallel()

	p := &Plan{Weeks: []Week{
		{WeekNumber: 13, Phase: "taper", WeeksUntilRace: 2},
		{WeekNumber: 14, Phase: "taper", WeeksUntilRace: 1},
		{WeekNumber: 15, Phase: "taper", WeeksUntilRace: 0},
	}}

	raceWeek := p.RaceWeek()
	require.NotNil(t, raceWeek)
	require.Equal(t, 15, raceWeek.WeekNumber)
}

func TestRaceWeekNilWithoutTaper(t *testing.T) {
	t.Parallel()

	p := &Plan{Weeks: []Week{{WeekNumber: 1, Phase: "base", WeeksUntilRace: 14}}}
	require.Nil(t, p.RaceWeek())
}

func TestMetadataDisplayDefaults(t *testing.T) {
	t.Parallel()

	var m Metadata
	require.Equal(t, "Training Plan", m.DisplayName())
	require.Equal(t, "Marathon", m.DisplayRaceName())

	m = Metadata{PlanName: "Spring Block", RaceName: "Eugene Marathon"}
	require.Equal(t, "Spring Block", m.DisplayName())
	require.Equal(t, "Eugene Marathon", m.DisplayRaceName())
}

func TestDayWorkoutTypeDefaultsToRest(t *testing.T) {
	t.Parallel()

	require.Equal(t, "rest", Day{}.WorkoutType())
	require.Equal(t, "rest", Day{Running: &Running{}}.WorkoutType())
	require.Equal(t, "tempo", Day{Running: &Running{Type: "tempo"}}.WorkoutType())
}
