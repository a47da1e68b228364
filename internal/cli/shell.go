package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada-undo/internal/ui"
	"github.com/Makepad-fr/tada-undo/internal/undo"
)

// session runs shell verbs against one controller, so undo works across
// lines. Items are written back on save, quit and end of input.
type session struct {
	opt   Options
	ctrl  *document
	dirty bool
}

func doShell(opt Options) int {
	s := &session{opt: opt}
	ctrl, code := open(opt, undo.WithOnChange(func(ch undo.Change) {
		logChange(opt.Log)(ch)
		s.dirty = true
	}))
	if code != 0 {
		return code
	}
	s.ctrl = ctrl

	sc := bufio.NewScanner(opt.In)
	exit := 0
	for sc.Scan() {
		quit, code := s.exec(sc.Text())
		if code > exit {
			exit = code
		}
		if quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Err, "read: "+err.Error())
		exit = 1
	}
	if code := s.flush(); code != 0 {
		return code
	}
	return exit
}

func (s *session) flush() int {
	if !s.dirty {
		return 0
	}
	if code := save(s.opt, s.ctrl); code != 0 {
		return code
	}
	s.dirty = false
	return 0
}

// exec runs one line. Bad input is reported and the session carries on.
func (s *session) exec(line string) (quit bool, code int) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, 0
	}
	verb, args := fields[0], fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), verb))

	switch verb {
	case "quit", "exit":
		return true, 0

	case "ls":
		renderList(s.opt.Out, s.ctrl.Items(), s.opt.Group, s.undoTip())
		return false, 0

	case "add":
		if rest == "" {
			ui.Fail(s.opt.Err, "usage: add <text...>")
			return false, 2
		}
		s.ctrl.CreateItem(rest)
		items := s.ctrl.Items()
		ui.OK(s.opt.Out, fmt.Sprintf("added #%d", items[len(items)-1].ID))
		return false, 0

	case "done", "rm":
		if len(args) != 1 {
			ui.Fail(s.opt.Err, "usage: "+verb+" <id>")
			return false, 2
		}
		id, err := parseID(args[0])
		if err != nil {
			ui.Fail(s.opt.Err, verb+": "+err.Error())
			return false, 2
		}
		apply, msg := s.ctrl.ToggleItem, "toggled"
		if verb == "rm" {
			apply, msg = s.ctrl.DeleteItem, "removed"
		}
		return false, s.report(apply(id), id, msg)

	case "edit":
		if len(args) < 2 {
			ui.Fail(s.opt.Err, "usage: edit <id> <text...>")
			return false, 2
		}
		id, err := parseID(args[0])
		if err != nil {
			ui.Fail(s.opt.Err, "edit: "+err.Error())
			return false, 2
		}
		text := strings.TrimSpace(strings.TrimPrefix(rest, args[0]))
		return false, s.report(s.ctrl.EditItem(id, text), id, "edited")

	case "undo":
		e, ok := s.ctrl.PeekUndo()
		if !s.ctrl.Undo() {
			fmt.Fprintln(s.opt.Out, ui.For(s.opt.Out).Muted("nothing to undo"))
			return false, 0
		}
		if ok {
			ui.OK(s.opt.Out, "undid "+e.Description)
		}
		return false, 0

	case "history":
		h := s.ctrl.History()
		if len(h) == 0 {
			fmt.Fprintln(s.opt.Out, ui.For(s.opt.Out).Muted("history is empty"))
			return false, 0
		}
		for i := len(h) - 1; i >= 0; i-- {
			fmt.Fprintf(s.opt.Out, "%2d. %s\n", len(h)-i, h[i].Description)
		}
		return false, 0

	case "find":
		if rest == "" {
			ui.Fail(s.opt.Err, "usage: find <query...>")
			return false, 2
		}
		for _, ln := range flatLines(ui.For(s.opt.Out), find(s.ctrl.Items(), rest)) {
			fmt.Fprintln(s.opt.Out, ln)
		}
		return false, 0

	case "save":
		if code := s.flush(); code != 0 {
			return false, code
		}
		ui.OK(s.opt.Out, "saved")
		return false, 0

	case "help":
		fmt.Fprintln(s.opt.Out, "verbs: add, done, edit, rm, undo, history, ls, find, save, quit")
		return false, 0
	}

	ui.Fail(s.opt.Err, "unknown verb: "+verb)
	return false, 2
}

func (s *session) report(ok bool, id int, verb string) int {
	if !ok {
		ui.Fail(s.opt.Err, fmt.Sprintf("no item #%d", id))
		return 1
	}
	ui.OK(s.opt.Out, fmt.Sprintf("%s #%d", verb, id))
	return 0
}

func (s *session) undoTip() string {
	if e, ok := s.ctrl.PeekUndo(); ok {
		return ui.Current().SymUndo + " undo: " + e.Description
	}
	return ""
}
