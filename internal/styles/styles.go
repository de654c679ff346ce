// Package styles holds the twilight brand palette, typography table, and
// layout constants shared by every page composer.
package styles

import (
	"fmt"
	"strings"
)

// RGB is an 8-bit color triple in the form the PDF canvas consumes.
type RGB struct {
	R, G, B int
}

// Hex formats the color as "#rrggbb" for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Point-based page geometry (US letter, 0.5in margins).
const (
	Inch       = 72.0
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 0.5 * Inch

	StripRadius = 8.0
)

// Brand palette.
var (
	TwilightNavy = RGB{0x1a, 0x1a, 0x3e}
	DeepPurple   = RGB{0x2d, 0x1b, 0x4e}
	NeonPink     = RGB{0xff, 0x6b, 0xb3}
	CyanGlow     = RGB{0x7d, 0xd3, 0xfc}
	SoftWhite    = RGB{0xf0, 0xf0, 0xff}
	StripPurple  = RGB{0x3d, 0x2a, 0x5c}
)

// Phase accent colors.
var (
	PhaseBase  = CyanGlow
	PhaseBuild = NeonPink
	PhasePeak  = SoftWhite
	PhaseTaper = RGB{0xa7, 0x8b, 0xfa}
	PhaseRace  = RGB{0xfb, 0xbf, 0x24}
)

// Workout accent colors.
var (
	WorkoutEasy      = CyanGlow
	WorkoutLong      = RGB{0xa7, 0x8b, 0xfa}
	WorkoutTempo     = NeonPink
	WorkoutIntervals = RGB{0xf4, 0x72, 0xb6}
	WorkoutHill      = RGB{0xfb, 0x92, 0x3c}
	WorkoutRacePace  = RGB{0xfb, 0xbf, 0x24}
	WorkoutRest      = RGB{0x6b, 0x72, 0x80}
	WorkoutCross     = RGB{0x34, 0xd3, 0x99}
	WorkoutRecovery  = RGB{0x94, 0xa3, 0xb8}
)

// Font size table shared by all composers.
const (
	SizeBrandTitle    = 48.0
	SizePageTitle     = 28.0
	SizeSectionHeader = 20.0
	SizeSubsection    = 16.0
	SizeBody          = 14.0
	SizeBodySmall     = 12.0
	SizeCaption       = 10.0
)

var phaseColors = map[string]RGB{
	"base":  PhaseBase,
	"build": PhaseBuild,
	"peak":  PhasePeak,
	"taper": PhaseTaper,
	"race":  PhaseRace,
}

var workoutColors = map[string]RGB{
	"easy":           WorkoutEasy,
	"long":           WorkoutLong,
	"tempo":          WorkoutTempo,
	"intervals":      WorkoutIntervals,
	"fartlek":        WorkoutIntervals,
	"hill_repeats":   WorkoutHill,
	"race_pace":      WorkoutRacePace,
	"rest":           WorkoutRest,
	"cross_training": WorkoutCross,
	"recovery":       WorkoutRecovery,
	"progression":    WorkoutLong,
}

// PhaseColor returns the accent color for a training phase. Unknown phases
// fall back to soft white.
func PhaseColor(phase string) RGB {
	if c, ok := phaseColors[strings.ToLower(phase)]; ok {
		return c
	}
	return SoftWhite
}

// WorkoutColor returns the accent color for a workout type. Unknown types
// fall back to soft white.
func WorkoutColor(workoutType string) RGB {
	if c, ok := workoutColors[strings.ToLower(workoutType)]; ok {
		return c
	}
	return SoftWhite
}

// Lerp interpolates between two colors, with t clamped to [0, 1].
func Lerp(from, to RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: from.R + int(float64(to.R-from.R)*t),
		G: from.G + int(float64(to.G-from.G)*t),
		B: from.B + int(float64(to.B-from.B)*t),
	}
}
