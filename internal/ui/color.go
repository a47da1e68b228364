package ui

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides terminal detection: force turns color on for
// every writer, disable turns it off. disable wins.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// Painter colors text for one output stream with the current theme.
type Painter struct {
	t     Theme
	color bool
}

// For returns a painter for w. Color is used only when w is a terminal,
// unless forced.
func For(w io.Writer) Painter {
	t := Current()
	on := false
	switch {
	case disableColor || t.NoColor:
	case forceColor:
		on = true
	default:
		on = isTerminal(w)
	}
	return Painter{t: t, color: on}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Theme is the theme the painter was built with.
func (p Painter) Theme() Theme { return p.t }

func (p Painter) paint(code, s string) string {
	if !p.color || code == "" {
		return s
	}
	return code + s + reset
}

func (p Painter) Title(s string) string   { return p.paint(p.t.Title, s) }
func (p Painter) Muted(s string) string   { return p.paint(p.t.Muted, s) }
func (p Painter) Accent(s string) string  { return p.paint(p.t.Accent, s) }
func (p Painter) Success(s string) string { return p.paint(p.t.Success, s) }
func (p Painter) Pending(s string) string { return p.paint(p.t.Pending, s) }
func (p Painter) Error(s string) string   { return p.paint(p.t.Error, s) }
func (p Painter) Faint(s string) string   { return p.paint(faint, s) }

// Box renders the checkbox for an item, colored by state.
func (p Painter) Box(done bool) string {
	if done {
		return p.Success(p.t.BoxChecked)
	}
	return p.Muted(p.t.BoxUnchecked)
}

func OK(w io.Writer, msg string) {
	p := For(w)
	fmt.Fprintln(w, p.Success(p.t.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	p := For(w)
	fmt.Fprintln(w, p.Error(p.t.SymFail+" "+msg))
}
