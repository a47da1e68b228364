package undo

import "github.com/Makepad-fr/tada-undo/internal/model"

// Collection is the ordered set of items a Controller edits.
type Collection struct {
	items []model.Item
}

// NewCollection copies seed into a new collection.
func NewCollection(seed []model.Item) *Collection {
	items := make([]model.Item, len(seed))
	copy(items, seed)
	return &Collection{items: items}
}

// Items returns a copy of the items in display order.
func (c *Collection) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Collection) Len() int { return len(c.items) }

// Get returns the item with the given id.
func (c *Collection) Get(id int) (model.Item, bool) {
	i := c.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return c.items[i], true
}

// MaxID returns the highest id in the collection, or 0 when empty.
func (c *Collection) MaxID() int {
	max := 0
	for _, it := range c.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

func (c *Collection) index(id int) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) appendItem(it model.Item) {
	c.items = append(c.items, it)
}

func (c *Collection) remove(id int) (model.Item, bool) {
	i := c.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	it := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	return it, true
}

func (c *Collection) flip(id int) {
	if i := c.index(id); i >= 0 {
		c.items[i].Done = !c.items[i].Done
	}
}

func (c *Collection) setText(id int, text string) {
	if i := c.index(id); i >= 0 {
		c.items[i].Text = text
	}
}
