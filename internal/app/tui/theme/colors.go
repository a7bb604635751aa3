package theme

import "github.com/charmbracelet/lipgloss"

// Border characters for rounded subtle borders
var BorderRounded = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}
