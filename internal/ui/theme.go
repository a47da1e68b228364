package ui

import "strings"

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	faint = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

// Theme bundles palette + symbols + box borders. A theme with NoColor set
// never emits escape codes, whatever the output is.
type Theme struct {
	Name                                          string
	NoColor                                       bool
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymPending, SymUndo, SymFail         string
}

var themes = map[string]Theme{
	"classic": {
		Name: "classic", Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymDone: "✔", SymPending: "•", SymUndo: "↶", SymFail: "✖",
	},
	"neon": {
		Name: "neon", Title: "\033[95m", Muted: fgGray, Accent: "\033[96m",
		Success: fgGreen, Error: fgRed, Pending: "\033[93m",
		BoxUnchecked: "◻", BoxChecked: "◼",
		CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
		H: "─", V: "│",
		SymDone: "✔", SymPending: "•", SymUndo: "↶", SymFail: "✖",
	},
	"mono": {
		Name: "mono", NoColor: true,
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
		H: "-", V: "|",
		SymDone: "x", SymPending: "-", SymUndo: "<", SymFail: "!",
	},
}

var current = themes["classic"]

// SetTheme switches the theme used by every renderer. Unknown names fall
// back to classic.
func SetTheme(name string) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		t = themes["classic"]
	}
	current = t
}

func Current() Theme { return current }
