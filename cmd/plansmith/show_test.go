package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPlanJSON = `{
  "metadata": {
    "planName": "Eugene Moderate",
    "raceName": "Eugene Marathon",
    "raceDate": "2026-04-26",
    "planLevel": "moderate",
    "totalWeeks": 2,
    "predictedFinishTime": {"target": "3:55:00", "range": "3:50:00 - 4:05:00"}
  },
  "paceZones": {
    "easy": {"min": "9:45", "max": "10:30"},
    "marathon": {"min": "8:55", "max": "9:10"}
  },
  "hrZones": {
    "zone2": {"name": "Aerobic", "minHR": 118, "maxHR": 137, "percentMaxHR": "60-70%"}
  },
  "weeks": [
    {
      "weekNumber": 1,
      "phase": "base",
      "weeksUntilRace": 1,
      "focus": "Easy aerobic miles",
      "totalMileage": 22,
      "days": {
        "sunday": {"running": {"type": "long", "title": "Long Run", "totalDistance": 8}}
      }
    },
    {
      "weekNumber": 2,
      "phase": "taper",
      "isRecoveryWeek": true,
      "weeksUntilRace": 0,
      "focus": "Race week",
      "totalMileage": 12,
      "days": {
        "sunday": {"running": {"type": "race_pace", "title": "Race Day", "totalDistance": 26.2}}
      }
    }
  ]
}`

func writePlanFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(testPlanJSON), 0o644))
	return path
}

func TestShowCommandSummarizesPlan(t *testing.T) {
	planPath := writePlanFile(t)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"show", planPath})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "Eugene Moderate")
	require.Contains(t, output, "Eugene Marathon on April 26, 2026")
	require.Contains(t, output, "3:55:00")
	require.Contains(t, output, "9:45 - 10:30 /mile")
	require.Contains(t, output, "118-137 bpm (60-70%)")
	require.Contains(t, output, "Week  1")
	require.Contains(t, output, "REC")
	require.Contains(t, output, "long 26.2")
}

func TestShowCommandFailsOnMissingFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"show", filepath.Join(t.TempDir(), "missing.json")})

	require.Error(t, root.Execute())
}
