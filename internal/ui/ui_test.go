package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████ 300%", ProgressBar(9, 3, 5))
}

func TestPanel_PadsToWidestLine(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", For(&buf).Error("[x] wide")})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+----------+", lines[0])
	assert.Equal(t, "| ab       |", lines[1])
	assert.Equal(t, "| [x] wide |", lines[2])
	assert.Equal(t, "+----------+", lines[3])
}

func TestPainter_BufferIsNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "x", For(&buf).Error("x"))
}

func TestPainter_Disabled(t *testing.T) {
	SetColorForcing(true, true)
	t.Cleanup(func() { SetColorForcing(false, false) })
	assert.Equal(t, "x", For(&bytes.Buffer{}).Error("x"))
}

func TestPainter_Forced(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })
	assert.Equal(t, fgRed+"x"+reset, For(&bytes.Buffer{}).Error("x"))
}

func TestSetTheme_MonoDoesNotLeak(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})

	SetTheme("mono")
	assert.Equal(t, "x", For(&bytes.Buffer{}).Error("x"))
	assert.Equal(t, "[x]", Current().BoxChecked)

	SetTheme("neon")
	assert.Equal(t, fgRed+"x"+reset, For(&bytes.Buffer{}).Error("x"))
	assert.Equal(t, "◼", Current().BoxChecked)

	SetTheme("nope")
	assert.Equal(t, "classic", Current().Name)
}

func TestOKFail(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "oops")
	assert.Equal(t, "✔ added\n✖ oops\n", buf.String())
}
