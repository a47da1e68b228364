package model

import "encoding/json"

// Item is the domain model for a todo entry.
type Item struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// UnmarshalJSON also accepts the older `title` key for Text.
func (it *Item) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID    int     `json:"id"`
		Text  *string `json:"text"`
		Title string  `json:"title"`
		Done  bool    `json:"done"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*it = Item{ID: raw.ID, Text: raw.Title, Done: raw.Done}
	if raw.Text != nil {
		it.Text = *raw.Text
	}
	return nil
}

// Stats counts done and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
