package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada-undo/internal/ui"
)

// ------- minimal styling helpers (Lip Gloss) -------
type styles struct {
	theme ui.Theme

	title, success, pending, accent, muted, err lipgloss.Style
	selected, done, help, frame                 lipgloss.Style
}

// newStyles derives the TUI styles from t. Colorless themes keep the text
// attributes and drop the colors.
func newStyles(t ui.Theme) styles {
	fg := func(s lipgloss.Style, c string) lipgloss.Style {
		if t.NoColor {
			return s
		}
		return s.Foreground(lipgloss.Color(c))
	}
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("8"))
	if t.NoColor {
		frame = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	}
	return styles{
		theme:    t,
		title:    lipgloss.NewStyle().Bold(true),
		success:  fg(lipgloss.NewStyle(), "42"),
		pending:  fg(lipgloss.NewStyle(), "214"),
		accent:   fg(lipgloss.NewStyle(), "12"),
		muted:    lipgloss.NewStyle().Faint(true),
		err:      fg(lipgloss.NewStyle().Bold(true), "9"),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),
		frame:    frame,
	}
}
