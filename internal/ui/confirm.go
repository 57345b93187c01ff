package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel asks a yes/no question. Anything but an explicit yes is no.
type ConfirmModel struct {
	prompt    string
	yes       key.Binding
	no        key.Binding
	confirmed bool
	done      bool
}

// NewConfirmModel creates a confirmation prompt.
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{
		prompt: prompt,
		yes:    key.NewBinding(key.WithKeys("y", "Y")),
		no:     key.NewBinding(key.WithKeys("n", "N", "enter", "q", "esc", "ctrl+c")),
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.yes):
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.no):
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("\n  %s %s %s ",
		ErrorStyle().Render(IconWarning), m.prompt, DimStyle().Render("[y/N]"))
}

// Confirmed reports whether the user answered yes.
func (m ConfirmModel) Confirmed() bool {
	return m.confirmed
}

// ─── Runners ─────────────────────────────────────────────────────────────────

// RunPicker shows the picker and returns the chosen indices; nil means the
// user cancelled or chose nothing.
func RunPicker(m PickerModel) ([]int, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("project picker: %w", err)
	}
	return final.(PickerModel).Selected(), nil
}

// Confirm asks prompt and returns the answer.
func Confirm(prompt string) (bool, error) {
	final, err := tea.NewProgram(NewConfirmModel(prompt)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return final.(ConfirmModel).Confirmed(), nil
}
