package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada-undo/internal/model"
	"github.com/Makepad-fr/tada-undo/internal/ui"
	"github.com/Makepad-fr/tada-undo/internal/undo"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newModel() (Model, *undo.Controller) {
	ctrl := undo.New([]model.Item{
		{ID: 1, Text: "Buy milk"},
		{ID: 2, Text: "Walk dog"},
	})
	return New(ctrl, Options{}), ctrl
}

func TestModel_ToggleAndUndo(t *testing.T) {
	m, ctrl := newModel()

	m = press(t, m, " ")
	it, _ := ctrl.Item(1)
	assert.True(t, it.Done)
	assert.True(t, ctrl.CanUndo())

	m = press(t, m, "u")
	it, _ = ctrl.Item(1)
	assert.False(t, it.Done)
	assert.False(t, ctrl.CanUndo())
	assert.Contains(t, m.status, `undid Toggle "Buy milk"`)
}

func TestModel_DeleteUndoAppends(t *testing.T) {
	m, ctrl := newModel()

	m = press(t, m, "d")
	require.Equal(t, 1, ctrl.Len())
	require.Len(t, m.list.Items(), 1)

	m = press(t, m, "u")
	items := ctrl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, 1, items[1].ID)
	assert.Len(t, m.list.Items(), 2)
}

func TestModel_AddAppendsAndSelects(t *testing.T) {
	m, ctrl := newModel()

	m = press(t, m, "a")
	require.True(t, m.adding)
	m = press(t, m, "T", "e", "a", "enter")

	assert.False(t, m.adding)
	items := ctrl.Items()
	require.Len(t, items, 3)
	assert.Equal(t, model.Item{ID: 3, Text: "Tea"}, items[2])
	assert.Equal(t, 2, m.list.Index())

	m = press(t, m, "u")
	assert.Equal(t, 2, ctrl.Len())
}

func TestModel_AddRejectsEmpty(t *testing.T) {
	m, ctrl := newModel()

	m = press(t, m, "a", "enter")
	assert.True(t, m.adding)
	assert.NotEmpty(t, m.inputErr)
	assert.Equal(t, 2, ctrl.Len())

	m = press(t, m, "esc")
	assert.False(t, m.adding)
	assert.False(t, ctrl.CanUndo())
}

func TestModel_Edit(t *testing.T) {
	m, ctrl := newModel()

	m = press(t, m, "down", "e")
	require.True(t, m.editing)
	assert.Equal(t, 2, m.editID)
	assert.Equal(t, "Walk dog", m.ti.Value())

	m.ti.SetValue("Walk cat")
	m = press(t, m, "enter")
	it, _ := ctrl.Item(2)
	assert.Equal(t, "Walk cat", it.Text)

	press(t, m, "u")
	it, _ = ctrl.Item(2)
	assert.Equal(t, "Walk dog", it.Text)
}

func TestModel_UndoWithEmptyHistory(t *testing.T) {
	m, ctrl := newModel()
	before := ctrl.Items()

	m = press(t, m, "u")
	assert.Equal(t, "nothing to undo", m.status)
	assert.Equal(t, before, ctrl.Items())
	assert.False(t, ctrl.Changed())
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel()
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_ViewShowsItems(t *testing.T) {
	m, _ := newModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := next.(Model).View()
	assert.Contains(t, view, "Buy milk")
	assert.Contains(t, view, "Walk dog")
}

func TestModel_UsesThemeSymbols(t *testing.T) {
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	m, _ := newModel()
	m = press(t, m, " ")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := next.(Model).View()

	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "[ ]")
	assert.Contains(t, m.list.Title, "<")
	for _, sym := range []string{"✔", "↶", "☐", "☑"} {
		assert.NotContains(t, view, sym)
	}
}

func TestModel_UndoBindingIsPerModel(t *testing.T) {
	a, _ := newModel()
	b, _ := newModel()
	require.False(t, a.keys.undo.Enabled())

	a = press(t, a, " ")
	assert.True(t, a.keys.undo.Enabled())
	assert.False(t, b.keys.undo.Enabled())

	a = press(t, a, "u")
	assert.False(t, a.keys.undo.Enabled())
}
