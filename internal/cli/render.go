package cli

import (
	"fmt"
	"io"

	"github.com/Makepad-fr/tada-undo/internal/model"
	"github.com/Makepad-fr/tada-undo/internal/ui"
)

// -------------- rendering helpers --------------

func renderList(w io.Writer, items []model.Item, group bool, tip string) {
	p := ui.For(w)
	t := p.Theme()
	d, pn := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.Title("Todos"),
		p.Success(t.SymDone), d,
		p.Pending(t.SymPending), pn,
		p.Accent("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, p.Muted(ui.ProgressBar(d, d+pn, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(p, items)...)
	} else {
		lines = append(lines, flatLines(p, items)...)
	}
	if tip != "" {
		lines = append(lines, "")
		lines = append(lines, p.Muted(tip))
	}
	ui.Panel(w, lines)
}

func flatLines(p ui.Painter, items []model.Item) []string {
	if len(items) == 0 {
		return []string{p.Muted("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		text := it.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			p.Faint(fmt.Sprintf("#%-3d", it.ID)), p.Box(it.Done), text))
	}
	return out
}

func groupLines(p ui.Painter, items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, p.Accent("Pending"))
	if len(pend) == 0 {
		lines = append(lines, p.Muted("(none)"))
	} else {
		lines = append(lines, flatLines(p, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, p.Accent("Done"))
	if len(done) == 0 {
		lines = append(lines, p.Muted("(none)"))
	} else {
		lines = append(lines, flatLines(p, done)...)
	}
	return lines
}
