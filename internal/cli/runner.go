package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tada-undo/internal/model"
	"github.com/Makepad-fr/tada-undo/internal/store/jsonstore"
	"github.com/Makepad-fr/tada-undo/internal/tui"
	"github.com/Makepad-fr/tada-undo/internal/ui"
	"github.com/Makepad-fr/tada-undo/internal/undo"
)

// Options tune behavior from root flags and config.
type Options struct {
	Group      bool   // list grouped by pending/done
	DataFile   string // JSON file holding the items
	MaxHistory int    // undo depth for shell/tui, 0 = unbounded

	In  io.Reader
	Out io.Writer
	Err io.Writer
	Log log.FieldLogger
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Log == nil {
		o.Log = log.StandardLogger()
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if opt.DataFile == "" {
		p, err := jsonstore.DefaultPath()
		if err != nil {
			ui.Fail(opt.Err, err.Error())
			return 1
		}
		opt.DataFile = p
	}
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return 2
	}
	cmd, a := args[0], args[1:]
	opt.Log.WithFields(log.Fields{"cmd": cmd, "data": opt.DataFile}).Debug("run")

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "ls":
		return doList(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail(opt.Err, "usage: todo add <text...>")
			return 2
		}
		return doAdd(opt, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail(opt.Err, "usage: todo done <id>")
			return 2
		}
		id, err := parseID(a[0])
		if err != nil {
			ui.Fail(opt.Err, "done: "+err.Error())
			return 2
		}
		return doToggle(opt, id)

	case "edit":
		if len(a) < 2 {
			ui.Fail(opt.Err, "usage: todo edit <id> <text...>")
			return 2
		}
		id, err := parseID(a[0])
		if err != nil {
			ui.Fail(opt.Err, "edit: "+err.Error())
			return 2
		}
		return doEdit(opt, id, strings.Join(a[1:], " "))

	case "rm":
		if len(a) != 1 {
			ui.Fail(opt.Err, "usage: todo rm <id>")
			return 2
		}
		id, err := parseID(a[0])
		if err != nil {
			ui.Fail(opt.Err, "rm: "+err.Error())
			return 2
		}
		return doRemove(opt, id)

	case "find":
		if len(a) == 0 {
			ui.Fail(opt.Err, "usage: todo find <query...>")
			return 2
		}
		return doFind(opt, strings.Join(a, " "))

	case "shell":
		return doShell(opt)

	case "tui":
		return doTUI(opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny CLI with undo

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ls                  List items
  add <text...>       Add a new item (text can be multiple words)
  done <id>           Toggle done for item #id
  edit <id> <text...> Replace the text of item #id
  rm <id>             Remove item #id
  find <query...>     Fuzzy search item text
  shell               Read commands from stdin; supports undo
  tui                 Interactive list; u undoes the last change

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3
  printf 'rm 1\nundo\n' | todo shell
`)
}

// -------------- subcommand impls ----------------

// document is a controller over the data file, plus the id sequence that
// is written back next to the items so ids stay unique across runs.
type document struct {
	*undo.Controller
	ids *undo.Sequence
}

// open loads the data file into a fresh controller.
func open(opt Options, opts ...undo.Option) (*document, int) {
	data, err := jsonstore.Load(opt.DataFile)
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return nil, 1
	}
	ids := undo.NewSequence(data.NextID)
	opts = append([]undo.Option{
		undo.WithIDSource(ids),
		undo.WithMaxDepth(opt.MaxHistory),
		undo.WithOnChange(logChange(opt.Log)),
	}, opts...)
	return &document{Controller: undo.New(data.Items, opts...), ids: ids}, 0
}

func save(opt Options, d *document) int {
	data := jsonstore.Data{NextID: d.ids.Peek(), Items: d.Items()}
	if err := jsonstore.Save(opt.DataFile, data); err != nil {
		ui.Fail(opt.Err, "save: "+err.Error())
		return 1
	}
	return 0
}

func logChange(l log.FieldLogger) func(undo.Change) {
	return func(ch undo.Change) {
		l.WithFields(log.Fields{
			"op":       ch.Op.String(),
			"kind":     ch.Command.Kind().String(),
			"item":     ch.Command.ItemID(),
			"command":  ch.Command.ID(),
			"can_undo": ch.CanUndo,
		}).Debug(ch.Command.Description())
	}
}

func doList(opt Options) int {
	ctrl, code := open(opt)
	if code != 0 {
		return code
	}
	renderList(opt.Out, ctrl.Items(), opt.Group, "Tip: add with `todo add \"Buy milk\"`")
	return 0
}

func doAdd(opt Options, text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		ui.Fail(opt.Err, "add: empty text")
		return 2
	}
	ctrl, code := open(opt)
	if code != 0 {
		return code
	}
	ctrl.CreateItem(text)
	if code := save(opt, ctrl); code != 0 {
		return code
	}
	items := ctrl.Items()
	ui.OK(opt.Out, fmt.Sprintf("added #%d", items[len(items)-1].ID))
	return 0
}

func doToggle(opt Options, id int) int {
	return mutate(opt, id, "toggled", func(c *undo.Controller) bool { return c.ToggleItem(id) })
}

func doEdit(opt Options, id int, text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		ui.Fail(opt.Err, "edit: empty text")
		return 2
	}
	return mutate(opt, id, "edited", func(c *undo.Controller) bool { return c.EditItem(id, text) })
}

func doRemove(opt Options, id int) int {
	return mutate(opt, id, "removed", func(c *undo.Controller) bool { return c.DeleteItem(id) })
}

func mutate(opt Options, id int, verb string, fn func(*undo.Controller) bool) int {
	ctrl, code := open(opt)
	if code != 0 {
		return code
	}
	if !fn(ctrl.Controller) {
		ui.Fail(opt.Err, fmt.Sprintf("no item #%d", id))
		fmt.Fprintln(opt.Err, ui.For(opt.Err).Muted("Hint: run `todo ls` to see valid ids"))
		return 1
	}
	if code := save(opt, ctrl); code != 0 {
		return code
	}
	ui.OK(opt.Out, fmt.Sprintf("%s #%d", verb, id))
	return 0
}

func doFind(opt Options, query string) int {
	ctrl, code := open(opt)
	if code != 0 {
		return code
	}
	matches := find(ctrl.Items(), query)
	if len(matches) == 0 {
		fmt.Fprintln(opt.Out, ui.For(opt.Out).Muted("no matches"))
		return 0
	}
	for _, ln := range flatLines(ui.For(opt.Out), matches) {
		fmt.Fprintln(opt.Out, ln)
	}
	return 0
}

// find returns items whose text fuzzy-matches query, best match first.
func find(items []model.Item, query string) []model.Item {
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.Text
	}
	matches := fuzzy.Find(query, texts)
	out := make([]model.Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}

func doTUI(opt Options) int {
	ctrl, code := open(opt)
	if code != 0 {
		return code
	}
	if err := tui.Run(ctrl.Controller, tui.Options{Log: opt.Log}); err != nil {
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	if !ctrl.Changed() {
		return 0
	}
	if code := save(opt, ctrl); code != 0 {
		return code
	}
	ui.OK(opt.Out, "saved")
	return 0
}

func parseID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("not an item id: %s", s)
	}
	return n, nil
}
