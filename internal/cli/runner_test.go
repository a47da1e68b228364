package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada-undo/internal/model"
	"github.com/Makepad-fr/tada-undo/internal/store/jsonstore"
	"github.com/Makepad-fr/tada-undo/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetColorForcing(false, true)
	os.Exit(m.Run())
}

type harness struct {
	path string
	out  bytes.Buffer
	err  bytes.Buffer
}

func newHarness(t *testing.T, seed []model.Item) *harness {
	t.Helper()
	h := &harness{path: filepath.Join(t.TempDir(), "todos.json")}
	if seed != nil {
		require.NoError(t, jsonstore.Save(h.path, jsonstore.Data{Items: seed}))
	}
	return h
}

func (h *harness) run(stdin string, args ...string) int {
	h.out.Reset()
	h.err.Reset()
	l := log.New()
	l.SetOutput(io.Discard)
	return Run(args, Options{
		DataFile: h.path,
		In:       strings.NewReader(stdin),
		Out:      &h.out,
		Err:      &h.err,
		Log:      l,
	})
}

func (h *harness) items(t *testing.T) []model.Item {
	t.Helper()
	d, err := jsonstore.Load(h.path)
	require.NoError(t, err)
	return d.Items
}

func TestRun_Usage(t *testing.T) {
	h := newHarness(t, nil)

	assert.Equal(t, 2, h.run(""))
	assert.Equal(t, 0, h.run("", "help"))
	assert.Contains(t, h.out.String(), "Subcommands:")

	assert.Equal(t, 2, h.run("", "bogus"))
	assert.Contains(t, h.err.String(), "unknown subcommand: bogus")

	assert.Equal(t, 2, h.run("", "add"))
	assert.Equal(t, 2, h.run("", "done", "x"))
	assert.Equal(t, 2, h.run("", "rm", "0"))
	assert.Equal(t, 2, h.run("", "edit", "1"))
	assert.Equal(t, 2, h.run("", "add", "   "))
}

func TestRun_AddToggleEditRemove(t *testing.T) {
	h := newHarness(t, []model.Item{{ID: 1, Text: "Buy milk"}})

	require.Equal(t, 0, h.run("", "add", "Walk", "dog"))
	assert.Contains(t, h.out.String(), "added #2")

	require.Equal(t, 0, h.run("", "done", "#2"))
	require.Equal(t, 0, h.run("", "edit", "1", "Buy", "oat", "milk"))

	assert.Equal(t, []model.Item{
		{ID: 1, Text: "Buy oat milk"},
		{ID: 2, Text: "Walk dog", Done: true},
	}, h.items(t))

	require.Equal(t, 0, h.run("", "rm", "1"))
	assert.Equal(t, []model.Item{{ID: 2, Text: "Walk dog", Done: true}}, h.items(t))
}

func TestRun_IDsNotReusedAcrossRuns(t *testing.T) {
	h := newHarness(t, []model.Item{
		{ID: 1, Text: "A"},
		{ID: 2, Text: "B"},
	})

	require.Equal(t, 0, h.run("", "rm", "2"))
	require.Equal(t, 0, h.run("", "add", "C"))
	assert.Contains(t, h.out.String(), "added #3")
	assert.Equal(t, []model.Item{
		{ID: 1, Text: "A"},
		{ID: 3, Text: "C"},
	}, h.items(t))

	// An undone add in a shell session still burns its id.
	require.Equal(t, 0, h.run("add D\nundo\nadd E\n", "shell"))
	assert.Contains(t, h.out.String(), "added #5")
	assert.Equal(t, 1, h.run("", "done", "2"), "id 2 must stay unknown")
}

func TestRun_UnknownIDLeavesFileAlone(t *testing.T) {
	seed := []model.Item{{ID: 1, Text: "Buy milk"}}
	h := newHarness(t, seed)

	assert.Equal(t, 1, h.run("", "done", "9"))
	assert.Contains(t, h.err.String(), "no item #9")
	assert.Equal(t, seed, h.items(t))
}

func TestRun_List(t *testing.T) {
	h := newHarness(t, []model.Item{
		{ID: 1, Text: "Buy milk"},
		{ID: 2, Text: "Walk dog", Done: true},
	})

	require.Equal(t, 0, h.run("", "ls"))
	out := h.out.String()
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Total 2")
}

func TestRun_Find(t *testing.T) {
	h := newHarness(t, []model.Item{
		{ID: 1, Text: "Buy milk"},
		{ID: 2, Text: "Walk dog"},
	})

	require.Equal(t, 0, h.run("", "find", "dg"))
	assert.Contains(t, h.out.String(), "Walk dog")
	assert.NotContains(t, h.out.String(), "Buy milk")

	require.Equal(t, 0, h.run("", "find", "zzz"))
	assert.Contains(t, h.out.String(), "no matches")
}
