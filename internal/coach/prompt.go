package coach

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/reignorshine/plansmith/internal/plan"
	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

//go:embed prompt_template.md
var promptTemplateText string

//go:embed guides/*.md
var guidesFS embed.FS

//go:embed example_plan.json
var examplePlanJSON []byte

// guideFiles are concatenated into the system prompt, in this order.
var guideFiles = []string{
	"availability-scheduling.md",
	"periodization.md",
	"pace-zones.md",
}

// exampleLimit caps how much of the example plan the system prompt carries.
const exampleLimit = 10000

var defaultRunningDays = []string{"monday", "tuesday", "wednesday", "friday", "saturday", "sunday"}
var defaultStrengthDays = []string{"tuesday", "thursday", "saturday"}

type promptData struct {
	AthleteData       string
	TodayDate         string
	RunningDays       string
	StrengthDays      string
	LongRunDay        string
	BlockedDatesRest  string
	BlockedDatesCross string
}

// BuildPrompt renders the coaching prompt for an intake submission.
func BuildPrompt(intake *plan.Intake, now time.Time) (string, error) {
	if intake == nil {
		return "", planerrors.NewGenerationError("prompt", fmt.Errorf("intake is nil"))
	}

	tmpl, err := template.New("prompt").Parse(promptTemplateText)
	if err != nil {
		return "", planerrors.NewGenerationError("prompt", err)
	}

	runningDays := intake.Availability.RunningDays
	if len(runningDays) == 0 {
		runningDays = defaultRunningDays
	}
	strengthDays := intake.Availability.StrengthDays
	if len(strengthDays) == 0 {
		strengthDays = defaultStrengthDays
	}
	longRunDay := intake.Availability.PreferredLongRunDay
	if longRunDay == "" {
		longRunDay = "sunday"
	}

	data := promptData{
		AthleteData:       athleteDocument(intake),
		TodayDate:         now.Format("2006-01-02"),
		RunningDays:       strings.Join(runningDays, ", "),
		StrengthDays:      strings.Join(strengthDays, ", "),
		LongRunDay:        longRunDay,
		BlockedDatesRest:  formatBlockedDates(intake.BlockedDates, "rest"),
		BlockedDatesCross: formatBlockedDates(intake.BlockedDates, "cross-training"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", planerrors.NewGenerationError("prompt", err)
	}
	return buf.String(), nil
}

// SystemPrompt assembles the coaching persona: training guides plus a
// truncated example plan showing the required JSON structure.
func SystemPrompt() string {
	var guides []string
	for _, name := range guideFiles {
		content, err := guidesFS.ReadFile("guides/" + name)
		if err != nil {
			continue
		}
		guides = append(guides, fmt.Sprintf("## %s\n\n%s", name, content))
	}

	example := string(examplePlanJSON)
	if len(example) > exampleLimit {
		example = example[:exampleLimit]
	}

	return fmt.Sprintf(`You are an expert marathon coach creating personalized training plans.

## Training Guides

%s

## Example Plan Structure (for reference)

`+"```json\n%s...\n```"+`

Follow the exact JSON structure from the example. Output ONLY valid JSON.`,
		strings.Join(guides, "\n\n---\n\n"), example)
}

// athleteDocument pretty-prints the intake as it appeared on disk so the
// prompt carries sections the typed model leaves unstructured.
func athleteDocument(intake *plan.Intake) string {
	raw := intake.Raw()
	if len(raw) == 0 {
		raw, _ = json.Marshal(intake)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// formatBlockedDates lists the blocked spans of one type, or "None".
func formatBlockedDates(dates []plan.BlockedDate, dateType string) string {
	var spans []string
	for _, d := range dates {
		if !strings.EqualFold(d.Type, dateType) {
			continue
		}
		reason := d.Reason
		if reason == "" {
			reason = "N/A"
		}
		spans = append(spans, fmt.Sprintf("%s to %s (%s)", d.StartDate, d.EndDate, reason))
	}
	if len(spans) == 0 {
		return "None"
	}
	return strings.Join(spans, ", ")
}
