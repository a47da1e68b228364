package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/tada-undo/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// Items and the id high-water mark are stored; undo history lives as long
// as the process.

// DefaultFileName is used when no data file is configured.
const DefaultFileName = "todos.json"

// DefaultPath returns DefaultFileName in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Data is the file contents. NextID is the next item id to hand out; it
// only ever grows, so ids of deleted items are not reused by later runs.
type Data struct {
	NextID int          `json:"next_id"`
	Items  []model.Item `json:"items"`
}

// Load reads path. A missing file is an empty list. Older files holding a
// bare item array are accepted; items saved without an id are numbered
// after the highest id in the file.
func Load(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Data{NextID: 1, Items: []model.Item{}}, nil
		}
		return Data{}, fmt.Errorf("read file: %w", err)
	}
	var d Data
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &d.Items)
	} else {
		err = json.Unmarshal(b, &d)
	}
	if err != nil {
		return Data{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if d.Items == nil {
		d.Items = []model.Item{}
	}
	d.NextID = nextID(d.NextID, assignIDs(d.Items))
	return d, nil
}

// Save writes d to path, replacing the file atomically.
func Save(path string, d Data) error {
	if d.Items == nil {
		d.Items = []model.Item{}
	}
	d.NextID = nextID(d.NextID, maxID(d.Items))
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".todos-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func nextID(stored, max int) int {
	if stored <= max {
		return max + 1
	}
	return stored
}

func maxID(items []model.Item) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

// assignIDs numbers items without an id and returns the highest id.
func assignIDs(items []model.Item) int {
	max := maxID(items)
	for i := range items {
		if items[i].ID <= 0 {
			max++
			items[i].ID = max
		}
	}
	return max
}
