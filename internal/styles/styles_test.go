package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhaseColorMapsKnownPhases(t *testing.T) {
	t.Parallel()

	require.Equal(t, CyanGlow, PhaseColor("base"))
	require.Equal(t, NeonPink, PhaseColor("build"))
	require.Equal(t, PhaseTaper, PhaseColor("TAPER"))
}

func TestPhaseColorFallsBackToSoftWhite(t *testing.T) {
	t.Parallel()

	require.Equal(t, SoftWhite, PhaseColor("sprint"))
	require.Equal(t, SoftWhite, PhaseColor(""))
}

func TestWorkoutColorAliases(t *testing.T) {
	t.Parallel()

	// fartlek shares the intervals accent, progression shares long.
	require.Equal(t, WorkoutColor("intervals"), WorkoutColor("fartlek"))
	require.Equal(t, WorkoutColor("long"), WorkoutColor("progression"))
	require.Equal(t, SoftWhite, WorkoutColor("swim"))
}

func TestHexFormatsColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#1a1a3e", TwilightNavy.Hex())
	require.Equal(t, "#ff6bb3", NeonPink.Hex())
}

func TestLerpEndpointsAndClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, TwilightNavy, Lerp(TwilightNavy, DeepPurple, 0))
	require.Equal(t, DeepPurple, Lerp(TwilightNavy, DeepPurple, 1))
	require.Equal(t, TwilightNavy, Lerp(TwilightNavy, DeepPurple, -2))
	require.Equal(t, DeepPurple, Lerp(TwilightNavy, DeepPurple, 5))

	mid := Lerp(RGB{0, 0, 0}, RGB{100, 200, 50}, 0.5)
	require.Equal(t, RGB{50, 100, 25}, mid)
}
