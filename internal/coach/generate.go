package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reignorshine/plansmith/internal/logger"
	"github.com/reignorshine/plansmith/internal/plan"
	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

// Generator runs the full intake-to-saved-plan pipeline.
type Generator struct {
	client   Client
	plansDir string
	log      *logger.Logger
	now      func() time.Time
}

// NewGenerator wires a generator around a completion client. Generated plans
// land in plansDir.
func NewGenerator(client Client, plansDir string, log *logger.Logger) *Generator {
	return &Generator{
		client:   client,
		plansDir: plansDir,
		log:      log,
		now:      time.Now,
	}
}

// Result reports where a generated plan was saved. ValidationErr carries a
// non-fatal validation failure; the plan is saved for review either way.
type Result struct {
	Path          string
	Plan          *plan.Plan
	ValidationErr error
}

// Generate builds the coaching prompt, calls the backend, extracts and
// validates the JSON plan, and saves it under the plans directory.
func (g *Generator) Generate(ctx context.Context, intake *plan.Intake) (*Result, error) {
	prompt, err := BuildPrompt(intake, g.now())
	if err != nil {
		return nil, err
	}

	g.log.WithFields(map[string]any{
		"prompt_len": len(prompt),
	}).Debug("calling generation backend")

	response, err := g.client.CompleteWithSystem(ctx, SystemPrompt(), prompt)
	if err != nil {
		return nil, planerrors.NewGenerationError("completion", err)
	}

	raw := ExtractJSON(response)

	var generated plan.Plan
	if err := json.Unmarshal([]byte(raw), &generated); err != nil {
		g.log.WithField("response_head", head(raw, 1000)).Debug("unparseable completion")
		return nil, planerrors.NewGenerationError("decode", err)
	}

	result := &Result{Plan: &generated}
	if err := plan.ValidateGenerated(&generated); err != nil {
		// Save anyway so the plan can be inspected and fixed by hand.
		g.log.Error(err, "generated plan failed validation, saving for review")
		result.ValidationErr = err
	} else {
		g.log.WithField("weeks", len(generated.Weeks)).Info("generated plan validated")
	}

	path, err := g.save(raw, intake)
	if err != nil {
		return nil, err
	}
	result.Path = path

	g.log.WithField("path", path).Info("plan saved")
	return result, nil
}

// save writes the extracted JSON, pretty-printed, so fields the typed model
// does not capture survive the round trip.
func (g *Generator) save(raw string, intake *plan.Intake) (string, error) {
	if err := os.MkdirAll(g.plansDir, 0o755); err != nil {
		return "", planerrors.NewGenerationError("save", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(raw), "", "  "); err != nil {
		pretty.Reset()
		pretty.WriteString(raw)
	}

	path := filepath.Join(g.plansDir, PlanFilename(intake, g.now()))
	if err := os.WriteFile(path, pretty.Bytes(), 0o644); err != nil {
		return "", planerrors.NewGenerationError("save", err)
	}
	return path, nil
}

// PlanFilename names a generated plan after the athlete, goal, and timestamp.
func PlanFilename(intake *plan.Intake, now time.Time) string {
	prefix := intake.EmailPrefix()
	if prefix == "" {
		prefix = "athlete"
	}
	return fmt.Sprintf("%s-%s-generated-%s.json", prefix, intake.GoalSlug(), now.Format("20060102-150405"))
}

// ExtractJSON strips a markdown code fence from a completion, returning the
// fenced body, or the trimmed text when no fence is present.
func ExtractJSON(text string) string {
	if start := strings.Index(text, "```json"); start >= 0 {
		body := text[start+len("```json"):]
		if end := strings.Index(body, "```"); end >= 0 {
			return strings.TrimSpace(body[:end])
		}
		return strings.TrimSpace(body)
	}
	if start := strings.Index(text, "```"); start >= 0 {
		body := text[start+len("```"):]
		if end := strings.Index(body, "```"); end >= 0 {
			return strings.TrimSpace(body[:end])
		}
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(text)
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
