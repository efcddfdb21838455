// Package fill implements the interactive form filling program.
package fill

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/formgate/internal/core/config"
	"github.com/colonyops/formgate/internal/core/styles"
	"github.com/colonyops/formgate/internal/tui/components/form"
)

// Result contains the outcome of a fill session.
type Result struct {
	Form      string
	Values    map[string]string
	Cancelled bool
}

// Model is the Bubble Tea model for filling one form.
type Model struct {
	width, height int
	name          string
	dialog        *form.Dialog
	result        Result
	quitting      bool
}

// New creates a model for a compiled form. Every keystroke in a field updates
// and validates that field.
func New(cf *config.CompiledForm) Model {
	return Model{
		name:   cf.Name,
		dialog: form.FromCompiled(cf),
	}
}

func (m Model) Init() tea.Cmd {
	return m.dialog.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.quit(true)
		}
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	if m.dialog.Submitted() {
		m.result.Values = m.dialog.FormValues()
		return m.quit(false)
	}

	if m.dialog.Cancelled() {
		return m.quit(true)
	}

	return m, cmd
}

func (m Model) quit(cancelled bool) (tea.Model, tea.Cmd) {
	m.quitting = true
	m.result.Form = m.name
	m.result.Cancelled = cancelled
	m.dialog.Close()
	return m, tea.Quit
}

func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TextMutedStyle.Render("formgate · "+m.name),
		"",
		m.dialog.View(),
	)
}

// Result returns the fill result. Call after the program exits.
func (m Model) Result() Result {
	return m.result
}
