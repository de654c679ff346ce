// Package tui renders the interactive progress view shown while a plan is
// being generated.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// StatusMsg replaces the activity line next to the spinner.
type StatusMsg struct {
	Text string
}

// DoneMsg ends the program with the generation outcome.
type DoneMsg struct {
	Path string
	Err  error
}

// Model contains the Bubbletea state for the generation spinner.
type Model struct {
	spinner   spinner.Model
	status    string
	path      string
	err       error
	done      bool
	cancelled bool
}

// NewModel constructs a spinner model with an initial status line.
func NewModel(status string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		spinner: s,
		status:  status,
	}
}

// Init starts the spinner tick loop.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Cancelled reports whether the user interrupted the run.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the generation error, if any.
func (m Model) Err() error {
	return m.err
}

// Path returns where the generated plan was saved.
func (m Model) Path() string {
	return m.path
}
