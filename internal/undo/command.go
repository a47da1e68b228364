package undo

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Makepad-fr/tada-undo/internal/model"
)

// Kind identifies the mutation a Command performs.
type Kind int

const (
	KindCreate Kind = iota
	KindToggle
	KindEdit
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindToggle:
		return "toggle"
	case KindEdit:
		return "edit"
	case KindDelete:
		return "delete"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is a reversible edit of a Collection. Execute followed by Undo
// leaves the collection as it was, provided nothing else touched the same
// item in between.
//
// Commands are values and never change after construction. The set of
// implementations is closed to this package.
type Command interface {
	// ID is unique per command.
	ID() string
	Kind() Kind
	// ItemID is the id of the item the command acts on.
	ItemID() int
	Description() string

	Execute(c *Collection)
	Undo(c *Collection)

	sealed()
}

// CreateCommand appends a new item with a pre-allocated id.
type CreateCommand struct {
	id   string
	Item model.Item
}

// NewCreate builds a create command for the given id and text.
func NewCreate(itemID int, text string) CreateCommand {
	return CreateCommand{
		id:   uuid.NewString(),
		Item: model.Item{ID: itemID, Text: text},
	}
}

func (c CreateCommand) ID() string  { return c.id }
func (c CreateCommand) Kind() Kind  { return KindCreate }
func (c CreateCommand) ItemID() int { return c.Item.ID }
func (c CreateCommand) sealed()     {}
func (c CreateCommand) Description() string {
	return "Add " + quote(c.Item.Text)
}

// Execute appends the item to the end of the collection.
func (c CreateCommand) Execute(col *Collection) { col.appendItem(c.Item) }

// Undo removes the item by id.
func (c CreateCommand) Undo(col *Collection) { col.remove(c.Item.ID) }

// ToggleCommand flips an item's done flag. It is its own inverse.
type ToggleCommand struct {
	id     string
	itemID int
	text   string
}

// NewToggle builds a toggle command, or returns false if id is not in col.
func NewToggle(col *Collection, itemID int) (ToggleCommand, bool) {
	it, ok := col.Get(itemID)
	if !ok {
		return ToggleCommand{}, false
	}
	return ToggleCommand{id: uuid.NewString(), itemID: itemID, text: it.Text}, true
}

func (c ToggleCommand) ID() string  { return c.id }
func (c ToggleCommand) Kind() Kind  { return KindToggle }
func (c ToggleCommand) ItemID() int { return c.itemID }
func (c ToggleCommand) sealed()     {}
func (c ToggleCommand) Description() string {
	return "Toggle " + quote(c.text)
}

func (c ToggleCommand) Execute(col *Collection) { col.flip(c.itemID) }
func (c ToggleCommand) Undo(col *Collection)    { col.flip(c.itemID) }

// EditCommand replaces an item's text. Undo restores the text captured when
// the command was built, not the text at undo time.
type EditCommand struct {
	id      string
	itemID  int
	OldText string
	NewText string
}

// NewEdit builds an edit command, or returns false if id is not in col.
func NewEdit(col *Collection, itemID int, newText string) (EditCommand, bool) {
	it, ok := col.Get(itemID)
	if !ok {
		return EditCommand{}, false
	}
	return EditCommand{
		id:      uuid.NewString(),
		itemID:  itemID,
		OldText: it.Text,
		NewText: newText,
	}, true
}

func (c EditCommand) ID() string  { return c.id }
func (c EditCommand) Kind() Kind  { return KindEdit }
func (c EditCommand) ItemID() int { return c.itemID }
func (c EditCommand) sealed()     {}
func (c EditCommand) Description() string {
	return fmt.Sprintf("Edit %s to %s", quote(c.OldText), quote(c.NewText))
}

func (c EditCommand) Execute(col *Collection) { col.setText(c.itemID, c.NewText) }
func (c EditCommand) Undo(col *Collection)    { col.setText(c.itemID, c.OldText) }

// DeleteCommand removes an item and keeps a copy of it. Undo appends the
// copy to the end of the collection; the original position is not kept.
type DeleteCommand struct {
	id   string
	Item model.Item
}

// NewDelete builds a delete command, or returns false if id is not in col.
func NewDelete(col *Collection, itemID int) (DeleteCommand, bool) {
	it, ok := col.Get(itemID)
	if !ok {
		return DeleteCommand{}, false
	}
	return DeleteCommand{id: uuid.NewString(), Item: it}, true
}

func (c DeleteCommand) ID() string  { return c.id }
func (c DeleteCommand) Kind() Kind  { return KindDelete }
func (c DeleteCommand) ItemID() int { return c.Item.ID }
func (c DeleteCommand) sealed()     {}
func (c DeleteCommand) Description() string {
	return "Delete " + quote(c.Item.Text)
}

func (c DeleteCommand) Execute(col *Collection) { col.remove(c.Item.ID) }
func (c DeleteCommand) Undo(col *Collection)    { col.appendItem(c.Item) }

func quote(s string) string {
	if utf8.RuneCountInString(s) > 30 {
		r := []rune(s)
		s = string(r[:27]) + "..."
	}
	return fmt.Sprintf("%q", s)
}
