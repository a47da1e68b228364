package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tada-undo/internal/model"
	"github.com/Makepad-fr/tada-undo/internal/ui"
	"github.com/Makepad-fr/tada-undo/internal/undo"
)

// Options configure the interactive list.
type Options struct {
	Log log.FieldLogger
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{ st styles }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box, text := d.st.muted.Render(d.st.theme.BoxUnchecked), it.Text
	if it.Done {
		box, text = d.st.success.Render(d.st.theme.BoxChecked), d.st.done.Render(it.Text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// keyMap holds one model's bindings. It is shared by pointer so copies of
// the same Model see the enabled state set by sync.
type keyMap struct {
	add, edit, del, toggle, undo key.Binding
}

func newKeyMap() *keyMap {
	return &keyMap{
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		del:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
}

func (k *keyMap) help() []key.Binding {
	return []key.Binding{k.toggle, k.add, k.edit, k.del, k.undo}
}

// Model is the bubbletea model. Every change goes through ctrl, so undo
// covers all of them.
type Model struct {
	ctrl *undo.Controller
	log  log.FieldLogger
	list list.Model
	keys *keyMap
	st   styles

	// Inline add/edit share one text input
	adding   bool
	editing  bool
	editID   int
	ti       textinput.Model
	inputErr string

	status string
	width  int
	height int
}

// New builds the model around ctrl.
func New(ctrl *undo.Controller, opt Options) Model {
	if opt.Log == nil {
		opt.Log = log.StandardLogger()
	}
	st := newStyles(ui.Current())
	keys := newKeyMap()
	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with our bindings
	l.AdditionalShortHelpKeys = keys.help
	l.AdditionalFullHelpKeys = keys.help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{ctrl: ctrl, log: opt.Log, list: l, keys: keys, st: st, ti: ti}
	m.resize(80, 24)
	m.sync()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(ctrl *undo.Controller, opt Options) error {
	_, err := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}
	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch km.String() {
	case "q", "esc":
		if m.list.FilterState() == list.FilterApplied && km.String() == "esc" {
			break
		}
		return m, tea.Quit
	case " ":
		if it, ok := m.selected(); ok {
			m.ctrl.ToggleItem(it.ID)
			m.status = ""
			m.sync()
		}
		return m, nil
	case "d":
		if it, ok := m.selected(); ok {
			m.ctrl.DeleteItem(it.ID)
			m.status = "deleted " + quote(it.Text) + " (u to undo)"
			m.sync()
		}
		return m, nil
	case "a":
		m.adding = true
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New item..."
		cmd := m.ti.Focus()
		return m, cmd
	case "e":
		if it, ok := m.selected(); ok {
			m.editing = true
			m.editID = it.ID
			m.inputErr = ""
			m.ti.SetValue(it.Text)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit item..."
			cmd := m.ti.Focus()
			return m, cmd
		}
		return m, nil
	case "u":
		e, _ := m.ctrl.PeekUndo()
		if m.ctrl.Undo() {
			m.status = "undid " + e.Description
			m.log.WithField("command", e.ID).Debug("undo")
		} else {
			m.status = "nothing to undo"
		}
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				m.inputErr = "text cannot be empty"
				return m, nil
			}
			if m.adding {
				m.ctrl.CreateItem(text)
				m.sync()
				m.list.Select(len(m.list.Items()) - 1)
			} else {
				m.ctrl.EditItem(m.editID, text)
				m.sync()
			}
			m.status = ""
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.Item, true
}

// sync copies the controller's items into the list and refreshes the header.
func (m *Model) sync() {
	items := m.ctrl.Items()
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = listItem{it}
	}
	idx := m.list.Index()
	m.list.SetItems(li)
	if idx >= len(li) && len(li) > 0 {
		m.list.Select(len(li) - 1)
	}

	dn, pn := model.Stats(items)
	t := m.st.theme
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("Todos"),
		m.st.success.Render(t.SymDone), dn,
		m.st.pending.Render(t.SymPending), pn,
		m.st.accent.Render("Total"), len(items),
	)
	if n := m.ctrl.Depth(); n > 0 {
		title += "  " + m.st.muted.Render(fmt.Sprintf("%s %d", t.SymUndo, n))
	}
	m.list.Title = title
	m.keys.undo.SetEnabled(m.ctrl.CanUndo())
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	listHeight := h - 5
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(w-4, listHeight)
}

func (m Model) View() string {
	content := m.list.View()
	if m.status != "" {
		content += "\n" + m.st.muted.Render(m.status)
	}
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = fmt.Sprintf("Edit item #%d", m.editID)
		}
		if m.inputErr != "" {
			title += " " + m.st.err.Render(m.inputErr)
		}
		content += "\n" + m.st.frame.Render(title+"\n"+m.ti.View())
	}
	return m.st.frame.Render(content)
}

func quote(s string) string {
	if r := []rune(s); len(r) > 30 {
		s = string(r[:27]) + "..."
	}
	return fmt.Sprintf("%q", s)
}
