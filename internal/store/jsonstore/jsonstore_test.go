package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada-undo/internal/model"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, d.Items)
	assert.NotNil(t, d.Items)
	assert.Equal(t, 1, d.NextID)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "todos.json")
	want := Data{
		NextID: 9,
		Items: []model.Item{
			{ID: 1, Text: "Buy milk"},
			{ID: 3, Text: "Walk dog", Done: true},
		},
	}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSave_NextIDNeverBelowItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, Save(path, Data{NextID: 2, Items: []model.Item{{ID: 5, Text: "x"}}}))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, d.NextID)
}

func TestLoad_NextIDSurvivesDeletes(t *testing.T) {
	path := writeFile(t, `{"next_id":4,"items":[{"id":1,"text":"a"}]}`)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.NextID)
}

func TestLoad_ItemArrayWithTitles(t *testing.T) {
	path := writeFile(t, `[{"title":"Buy milk","done":false},{"title":"Walk dog","done":true}]`)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{ID: 1, Text: "Buy milk"},
		{ID: 2, Text: "Walk dog", Done: true},
	}, d.Items)
	assert.Equal(t, 3, d.NextID)

	// Saving writes the text back under the current key.
	require.NoError(t, Save(path, d))
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestLoad_AssignsMissingIDs(t *testing.T) {
	path := writeFile(t, `[{"text":"a"},{"id":5,"text":"b"},{"text":"c","done":true}]`)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{ID: 6, Text: "a"},
		{ID: 5, Text: "b"},
		{ID: 7, Text: "c", Done: true},
	}, d.Items)
	assert.Equal(t, 8, d.NextID)
}

func TestLoad_BadJSON(t *testing.T) {
	_, err := Load(writeFile(t, "{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")
}

func TestSave_EmptyItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, Save(path, Data{}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"next_id":1,"items":[]}`, string(b))
}
