package tui

import "fmt"

// View renders the spinner line, or the final outcome once done.
func (m Model) View() string {
	if m.done {
		switch {
		case m.cancelled:
			return failureStyle.Render("cancelled") + "\n"
		case m.err != nil:
			return failureStyle.Render(fmt.Sprintf("generation failed: %v", m.err)) + "\n"
		default:
			return successStyle.Render(fmt.Sprintf("plan saved to %s", m.path)) + "\n"
		}
	}

	return fmt.Sprintf("%s %s\n", m.spinner.View(), statusStyle.Render(m.status))
}
