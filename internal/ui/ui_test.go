package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/devsweep/internal/clean"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
	"github.com/lakshaymaurya-felt/devsweep/internal/scan"
)

func testProjects() []project.ScannedProject {
	mk := func(name, kind string, size uint64) project.ScannedProject {
		return project.NewScannedProject(name, kind, "/src/"+name, time.Now().Add(-48*time.Hour),
			[]project.CleanTarget{{Name: "target/", Path: "/src/" + name + "/target", SizeBytes: size}})
	}
	return []project.ScannedProject{
		mk("api", "rust", 120_000_000),
		mk("web", "node", 50_000_000),
		mk("tool", "go", 1_000),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m PickerModel, msgs ...tea.Msg) PickerModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(PickerModel)
	}
	return m
}

func TestPicker_ToggleAndAccept(t *testing.T) {
	m := press(NewPickerModel(testProjects()),
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		runes("x"),
	)
	assert.Equal(t, []int{0, 2}, m.Ticked())
	assert.Nil(t, m.Selected(), "nothing is selected until accepted")
	assert.Contains(t, m.View(), "2 selected")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Accepted())
	assert.Equal(t, []int{0, 2}, m.Selected())
}

func TestPicker_AllNoneAndBounds(t *testing.T) {
	m := press(NewPickerModel(testProjects()), runes("a"))
	assert.Equal(t, []int{0, 1, 2}, m.Ticked())

	m = press(m, runes("n"))
	assert.Empty(t, m.Ticked())

	// The cursor never leaves the list.
	m = press(m,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
		runes(" "),
	)
	assert.Equal(t, []int{2}, m.Ticked())
}

func TestPicker_QuitCancels(t *testing.T) {
	m := press(NewPickerModel(testProjects()), runes("a"), runes("q"))
	assert.False(t, m.Accepted())
	assert.Nil(t, m.Selected())
	assert.Empty(t, m.View())
}

func TestPicker_EmptyList(t *testing.T) {
	m := press(NewPickerModel(nil), runes(" "), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Accepted())
	assert.Empty(t, m.Selected())
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y": true, "Y": true, "n": false, "q": false} {
		next, cmd := NewConfirmModel("Delete?").Update(runes(input))
		require.NotNil(t, cmd, input)
		assert.Equal(t, want, next.(ConfirmModel).Confirmed(), input)
	}

	next, _ := NewConfirmModel("Delete?").Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, next.(ConfirmModel).Confirmed(), "enter defaults to no")

	assert.Contains(t, NewConfirmModel("Delete 3 projects?").View(), "Delete 3 projects?")
}

func TestRenderProjects(t *testing.T) {
	out := RenderProjects(testProjects())
	for _, want := range []string{"PROJECT", "api", "rust", "120 MB", "web", "50 MB", "target/", "3 projects", "170 MB"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, RenderProjects(nil), "No projects with cleanable artifacts found.")
}

func TestRenderCleanSummary(t *testing.T) {
	results := []clean.Result{
		{ProjectName: "api", BytesFreed: 120_000_000, Errors: []string{}},
		{ProjectName: "web", BytesFreed: 0, Errors: []string{"failed to remove node_modules/"}},
	}
	out := RenderCleanSummary(results, false)
	assert.Contains(t, out, "Freed")
	assert.Contains(t, out, "120 MB")
	assert.Contains(t, out, "failed to remove node_modules/")
	assert.Contains(t, out, "1 errors")

	assert.Contains(t, RenderCleanSummary(results, true), "Would free")
}

func TestRenderSummary(t *testing.T) {
	sum := scan.Summarize(testProjects())
	out := RenderSummary("/src", sum, &scan.VolumeUsage{Total: 1_000_000_000, Free: 250_000_000, UsedPercent: 75})
	assert.Contains(t, out, "/src")
	assert.Contains(t, out, "170 MB")
	assert.Contains(t, out, "rust")
	assert.Contains(t, out, "250 MB of 1.0 GB")
	assert.NotContains(t, RenderSummary("/src", sum, nil), "Volume free")
}
