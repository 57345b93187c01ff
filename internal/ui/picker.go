package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
)

// ─── Key map ─────────────────────────────────────────────────────────────────

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	None   key.Binding
	Accept key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeys {
	return pickerKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		None:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "none")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "clean")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.All, k.None, k.Accept, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// PickerModel is the bubbletea Model for selecting projects to clean.
type PickerModel struct {
	projects []project.ScannedProject
	selected map[int]bool
	cursor   int
	offset   int // viewport scroll offset
	width    int
	height   int
	keys     pickerKeys
	help     help.Model
	accepted bool
	quitting bool
}

// NewPickerModel creates a picker over projects with nothing selected.
func NewPickerModel(projects []project.ScannedProject) PickerModel {
	return PickerModel{
		projects: projects,
		selected: make(map[int]bool),
		width:    80,
		height:   24,
		keys:     defaultPickerKeys(),
		help:     help.New(),
	}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.ensureVisible()
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.projects)-1 {
				m.cursor++
				m.ensureVisible()
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.projects) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}

		case key.Matches(msg, m.keys.All):
			for i := range m.projects {
				m.selected[i] = true
			}

		case key.Matches(msg, m.keys.None):
			m.selected = make(map[int]bool)
		}
	}
	return m, nil
}

// Selected returns the chosen indices in ascending order, or nil if the
// user cancelled.
func (m PickerModel) Selected() []int {
	if !m.accepted {
		return nil
	}
	return m.Ticked()
}

// Accepted reports whether the user confirmed the selection.
func (m PickerModel) Accepted() bool {
	return m.accepted
}

func (m PickerModel) selectedBytes() uint64 {
	var total uint64
	for i, p := range m.projects {
		if m.selected[i] {
			total += p.TotalCleanableBytes
		}
	}
	return total
}

// ─── View ────────────────────────────────────────────────────────────────────

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(TitleStyle().Render("  Select projects to clean:"))
	s.WriteString("\n\n")

	vh := m.viewportHeight()
	for i := m.offset; i < len(m.projects) && i < m.offset+vh; i++ {
		s.WriteString(m.renderRow(i))
		s.WriteString("\n")
	}
	if len(m.projects) > vh {
		s.WriteString(DimStyle().Italic(true).Render(
			fmt.Sprintf("  ── %d/%d projects ──", min(m.offset+vh, len(m.projects)), len(m.projects))))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("  %d selected, %s\n",
		len(m.Ticked()), SizeStyle().Render(core.FormatSize(m.selectedBytes()))))
	s.WriteString("  " + HintBarStyle().Render(m.help.View(m.keys)))
	return s.String()
}

// Ticked returns the currently ticked indices, accepted or not.
func (m PickerModel) Ticked() []int {
	var out []int
	for i := range m.projects {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

func (m PickerModel) renderRow(i int) string {
	box := DimStyle().Render(IconUnticked)
	if m.selected[i] {
		box = SuccessStyle().Render(IconChecked)
	}
	label := ProjectLabel(m.projects[i])
	if i == m.cursor {
		cursor := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render(IconBlock)
		return " " + cursor + box + " " + lipgloss.NewStyle().Bold(true).Render(label)
	}
	return "  " + box + " " + label
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *PickerModel) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m PickerModel) viewportHeight() int {
	h := m.height - 6 // title (2) + footer (3) + padding
	if h < 1 {
		h = 1
	}
	return h
}
