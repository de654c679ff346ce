package notify

import (
	"fmt"
	"strings"

	"github.com/reignorshine/plansmith/internal/plan"
)

// Subject is the notification subject line.
const Subject = "Your Eugene Marathon Training Plan is Ready!"

// BuildEmail renders the notification HTML body for an athlete whose plan is
// ready. Links point at the repository blob URLs when the builder resolved a
// repository slug.
func BuildEmail(intake *plan.Intake, artifacts Artifacts, links *LinkBuilder) (subject, htmlBody string) {
	var parts []string

	parts = append(parts,
		"<h1>Your Training Plan is Ready!</h1>",
		"<p>Great news! Your personalized training plan for the Eugene Marathon has been generated.</p>",
	)

	if intake.TargetTime != "" {
		parts = append(parts, fmt.Sprintf("<p><strong>Target Time:</strong> %s</p>", intake.TargetTime))
	}

	parts = append(parts, "<h2>Your Files</h2>", "<ul>")
	if artifacts.PDFPath != "" && links.Resolved() {
		parts = append(parts, fmt.Sprintf(`<li><a href="%s">Download your PDF Training Plan</a></li>`, links.FileURL(artifacts.PDFPath)))
	}
	if artifacts.PlanPath != "" && links.Resolved() {
		parts = append(parts, fmt.Sprintf(`<li><a href="%s">View detailed plan data (JSON)</a></li>`, links.FileURL(artifacts.PlanPath)))
	}
	parts = append(parts, "</ul>")

	parts = append(parts,
		"<h2>What's Next?</h2>",
		"<ol>",
		"<li>Review your training plan and pace zones</li>",
		"<li>Mark your calendar with key workouts</li>",
		"<li>Set up your Garmin/watch with your HR zones</li>",
		"<li>Start Week 1 on Monday!</li>",
		"</ol>",
		"<p>Remember: Easy runs should feel <em>easy</em>. If you can't hold a conversation, slow down!</p>",
		"<hr>",
		"<p><em>This plan was automatically generated based on your intake form submission.</em></p>",
		"<p>Questions? Reply to this email or open an issue on GitHub.</p>",
	)

	return Subject, strings.Join(parts, "\n")
}
