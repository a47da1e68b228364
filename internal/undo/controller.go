package undo

import "github.com/Makepad-fr/tada-undo/internal/model"

// Op says whether a Change came from executing or undoing a command.
type Op int

const (
	OpExecuted Op = iota
	OpUndone
)

func (o Op) String() string {
	if o == OpUndone {
		return "undone"
	}
	return "executed"
}

// Change is passed to the OnChange hook after every push and every undo.
type Change struct {
	Op      Op
	Command Command
	CanUndo bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDSource replaces the default Sequence. Use it to share one id
// source between several controllers.
func WithIDSource(src IDSource) Option {
	return func(c *Controller) {
		c.ids = src
		c.ownIDs = false
	}
}

// WithMaxDepth bounds the history; see NewHistory.
func WithMaxDepth(n int) Option {
	return func(c *Controller) { c.history = NewHistory(n) }
}

// WithOnChange registers a hook called after each push and undo. Calls made
// from the hook back into the same controller are ignored.
func WithOnChange(fn func(Change)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller owns an item collection and its undo history. All edits go
// through it so that every one of them can be undone in reverse order.
type Controller struct {
	items    *Collection
	history  *History
	ids      IDSource
	ownIDs   bool
	onChange func(Change)

	// busy is set while a command runs; reentrant calls are dropped.
	busy    bool
	changed bool
}

// New creates a controller seeded with a copy of items.
func New(seed []model.Item, opts ...Option) *Controller {
	c := &Controller{
		items:   NewCollection(seed),
		history: NewHistory(0),
	}
	c.ids = NewSequence(c.items.MaxID() + 1)
	c.ownIDs = true
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateItem appends a new item with a fresh id.
func (c *Controller) CreateItem(text string) bool {
	if c.busy {
		return false
	}
	return c.run(NewCreate(c.ids.Next(), text))
}

// ToggleItem flips the done flag of item id. Returns false if id is unknown.
func (c *Controller) ToggleItem(id int) bool {
	cmd, ok := NewToggle(c.items, id)
	if !ok {
		return false
	}
	return c.run(cmd)
}

// EditItem replaces the text of item id. Returns false if id is unknown.
func (c *Controller) EditItem(id int, text string) bool {
	cmd, ok := NewEdit(c.items, id, text)
	if !ok {
		return false
	}
	return c.run(cmd)
}

// DeleteItem removes item id. Returns false if id is unknown.
func (c *Controller) DeleteItem(id int) bool {
	cmd, ok := NewDelete(c.items, id)
	if !ok {
		return false
	}
	return c.run(cmd)
}

// Undo reverts the most recent command. It is a no-op when there is
// nothing to undo.
func (c *Controller) Undo() bool {
	if c.busy {
		return false
	}
	cmd, ok := c.history.Pop()
	if !ok {
		return false
	}

	c.busy = true
	defer func() { c.busy = false }()

	cmd.Undo(c.items)
	if cmd.Kind() == KindCreate {
		c.ids.Release(cmd.ItemID())
	}
	c.changed = true
	c.notify(OpUndone, cmd)
	return true
}

func (c *Controller) run(cmd Command) bool {
	if c.busy {
		return false
	}
	c.busy = true
	defer func() { c.busy = false }()

	cmd.Execute(c.items)
	c.history.Push(cmd)
	c.changed = true
	c.notify(OpExecuted, cmd)
	return true
}

func (c *Controller) notify(op Op, cmd Command) {
	if c.onChange == nil {
		return
	}
	c.onChange(Change{Op: op, Command: cmd, CanUndo: c.CanUndo()})
}

// CanUndo reports whether the history is non-empty.
func (c *Controller) CanUndo() bool { return c.history.Len() > 0 }

// Depth returns the number of commands that can be undone.
func (c *Controller) Depth() int { return c.history.Len() }

// PeekUndo describes the command the next Undo would revert.
func (c *Controller) PeekUndo() (Entry, bool) { return c.history.Peek() }

// History lists undoable commands, oldest first.
func (c *Controller) History() []Entry { return c.history.Entries() }

// Items returns a copy of the current items in display order.
func (c *Controller) Items() []model.Item { return c.items.Items() }

// Item returns the item with the given id.
func (c *Controller) Item(id int) (model.Item, bool) { return c.items.Get(id) }

// Len returns the number of items.
func (c *Controller) Len() int { return c.items.Len() }

// Changed reports whether any command was executed or undone since the
// controller was created or last Reset.
func (c *Controller) Changed() bool { return c.changed }

// Reset replaces the items and drops the history. A controller using its
// default id source restarts it above the highest new id.
func (c *Controller) Reset(items []model.Item) {
	if c.busy {
		return
	}
	c.items = NewCollection(items)
	c.history.Clear()
	if c.ownIDs {
		c.ids = NewSequence(c.items.MaxID() + 1)
	}
	c.changed = false
}
