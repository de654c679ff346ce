package plan

import (
	"encoding/json"
	"os"
	"strings"

	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

// Intake is an athlete intake form submission. The coaching prompt embeds the
// raw document, so sections the renderer never touches stay unstructured.
type Intake struct {
	Email           string          `json:"email,omitempty" validate:"omitempty,email"`
	Goal            string          `json:"goal,omitempty"`
	TargetTime      string          `json:"targetTime,omitempty"`
	Availability    Availability    `json:"availability,omitempty"`
	RecentRace      json.RawMessage `json:"recentRace,omitempty"`
	HeartRate       json.RawMessage `json:"heartRate,omitempty"`
	BodyComposition json.RawMessage `json:"bodyComposition,omitempty"`
	BlockedDates    []BlockedDate   `json:"blockedDates,omitempty"`

	raw []byte
}

// Availability captures the athlete's weekly schedule constraints.
type Availability struct {
	RunningDays         []string `json:"runningDays,omitempty"`
	StrengthDays        []string `json:"strengthDays,omitempty"`
	PreferredLongRunDay string   `json:"preferredLongRunDay,omitempty"`
}

// BlockedDate is a span the plan must schedule around.
type BlockedDate struct {
	Type      string `json:"type,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// LoadIntake reads an intake submission from disk. Missing sections are
// reported through the returned warnings rather than failing the load.
func LoadIntake(path string) (*Intake, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, planerrors.NewParseError(path, err)
	}

	var intake Intake
	if err := json.Unmarshal(data, &intake); err != nil {
		return nil, nil, planerrors.NewParseError(path, err)
	}
	intake.raw = data

	if intake.Email != "" {
		if err := validatorInstance().Var(intake.Email, "email"); err != nil {
			return nil, nil, planerrors.NewValidationError("email", "invalid email address", err)
		}
	}

	var warnings []string
	if len(intake.Availability.RunningDays) == 0 {
		warnings = append(warnings, "availability")
	}
	if len(intake.RecentRace) == 0 {
		warnings = append(warnings, "recentRace")
	}
	if len(intake.HeartRate) == 0 {
		warnings = append(warnings, "heartRate")
	}
	if len(intake.BodyComposition) == 0 {
		warnings = append(warnings, "bodyComposition")
	}

	return &intake, warnings, nil
}

// Raw returns the intake document exactly as it appeared on disk.
func (i *Intake) Raw() []byte {
	return i.raw
}

// EmailPrefix returns the sanitized local part of the athlete's email, used to
// key generated plan file names. Empty when no usable email is present.
func (i *Intake) EmailPrefix() string {
	at := strings.Index(i.Email, "@")
	if at <= 0 {
		return ""
	}
	prefix := i.Email[:at]
	prefix = strings.ReplaceAll(prefix, ".", "-")
	prefix = strings.ReplaceAll(prefix, "_", "-")
	return prefix
}

// GoalSlug returns the goal lowered and kebab-cased for file names.
func (i *Intake) GoalSlug() string {
	goal := i.Goal
	if goal == "" {
		goal = "moderate"
	}
	return strings.ReplaceAll(strings.ToLower(goal), " ", "-")
}
