// Package undo records reversible edits to a todo list and reverts them in
// strict reverse order.
//
// # Commands
//
// Every mutation is captured as an immutable Command value holding exactly
// the state needed to invert it:
//   - CreateCommand: the allocated id and the text of the new item
//   - ToggleCommand: the item id (toggling is its own inverse)
//   - EditCommand: the text before and after the edit
//   - DeleteCommand: a full copy of the removed item
//
// # History
//
// A Controller owns one Collection and one History. Executing a command
// appends it to the history; Undo pops the most recent command and applies
// its inverse:
//
//	ctrl := undo.New(seed)
//	ctrl.ToggleItem(1)
//	ctrl.CreateItem("Buy milk")
//	ctrl.Undo() // removes "Buy milk"
//	ctrl.Undo() // un-toggles item 1
//
// There is no redo. A command that has been undone is dropped.
//
// # Limitations
//
// Undoing a delete appends the item to the end of the list instead of its
// original position. Undoing an edit restores the text captured when the
// edit was made, even if the item changed again afterwards.
//
// A Controller is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
package undo
