// Package notify finds generated plan artifacts and emails athletes about
// them.
package notify

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reignorshine/plansmith/internal/plan"
	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

// Artifacts are the files a notification links to. Either path may be empty
// when the artifact does not exist.
type Artifacts struct {
	PlanPath string
	PDFPath  string
}

// Empty reports whether no artifacts were found.
func (a Artifacts) Empty() bool {
	return a.PlanPath == "" && a.PDFPath == ""
}

// Locate finds the most recently generated plan for the athlete and the PDF
// rendered from it. Plans match `<email-prefix>*-generated-*.json` in
// plansDir; the PDF shares the plan's stem under outputDir.
func Locate(plansDir, outputDir string, intake *plan.Intake) (Artifacts, error) {
	var artifacts Artifacts

	prefix := intake.EmailPrefix()
	if prefix == "" {
		return artifacts, nil
	}

	pattern := filepath.Join(plansDir, prefix+"*-generated-*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return artifacts, planerrors.NewNotifyError(intake.Email, err)
	}

	var newest time.Time
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if artifacts.PlanPath == "" || info.ModTime().After(newest) {
			artifacts.PlanPath = match
			newest = info.ModTime()
		}
	}
	if artifacts.PlanPath == "" {
		return artifacts, nil
	}

	stem := strings.TrimSuffix(filepath.Base(artifacts.PlanPath), filepath.Ext(artifacts.PlanPath))
	pdfPath := filepath.Join(outputDir, stem+".pdf")
	if _, err := os.Stat(pdfPath); err == nil {
		artifacts.PDFPath = pdfPath
	}

	return artifacts, nil
}
