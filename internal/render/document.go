// Package render turns a training plan document into the branded multi-page
// PDF: cover, zones reference card, overview strips, one detail page per
// week, and the race week summary.
package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/reignorshine/plansmith/internal/logger"
	"github.com/reignorshine/plansmith/internal/plan"
	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

const (
	documentAuthor  = "Reign or Shine Training"
	documentCreator = "Reign or Shine PDF Generator"
)

// Renderer composes plan documents into PDFs.
type Renderer struct {
	log    *logger.Logger
	quotes Quotes
}

// New creates a Renderer writing progress through the supplied logger.
func New(log *logger.Logger) *Renderer {
	return &Renderer{log: log, quotes: loadQuotes()}
}

// Render draws every page of the plan in fixed order and writes the PDF to
// outputPath. It returns the number of pages produced.
func (r *Renderer) Render(p *plan.Plan, outputPath string) (int, error) {
	c := NewCanvas()
	c.SetDocumentInfo(
		p.Metadata.DisplayName(),
		documentAuthor,
		"Marathon Training Plan - "+p.Metadata.DisplayRaceName(),
		documentCreator,
	)

	r.log.WithField("page", "cover").Debug("drawing page")
	drawCoverPage(c, p)

	r.log.WithField("page", "zones").Debug("drawing page")
	drawZonesCard(c, p)

	r.log.WithField("page", "overview").Debug("drawing page")
	drawOverviewPages(c, p)

	for i := range p.Weeks {
		week := &p.Weeks[i]
		weekNumber := week.WeekNumber
		if weekNumber == 0 {
			weekNumber = i + 1
		}
		r.log.WithFields(map[string]any{"page": "week", "week": weekNumber}).Debug("drawing page")
		drawWeekDetailPage(c, week, weekNumber, r.quotes)
	}

	if raceWeek := p.RaceWeek(); raceWeek != nil {
		r.log.WithField("page", "race-week").Debug("drawing page")
		drawRaceWeekPage(c, p, r.quotes)
	}

	if err := c.Err(); err != nil {
		return 0, planerrors.NewRenderError("", err)
	}

	pages := c.PageCount()
	if err := c.WriteFile(outputPath); err != nil {
		return 0, planerrors.NewRenderError("", err)
	}

	r.log.WithFields(map[string]any{"output": outputPath, "pages": pages}).Info("pdf written")
	return pages, nil
}

// DefaultOutputPath derives the output file name from the plan name plus a
// date stamp, e.g. output/eugene-moderate-20260124.pdf.
func DefaultOutputPath(outputDir string, p *plan.Plan, now time.Time) string {
	name := strings.ToLower(p.Metadata.DisplayName())
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	return filepath.Join(outputDir, fmt.Sprintf("%s-%s.pdf", name, now.Format("20060102")))
}
