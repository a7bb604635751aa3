package views

import (
	"strings"

	"shade/internal/app/tui/theme"
)

// RenderHelpOverlay renders the help overlay modal
func RenderHelpOverlay(styles theme.Styles) string {
	lines := []string{
		styles.MenuTitle.Render("Keyboard Shortcuts"),
		"",
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"j / ↓", "Scroll down"},
		{"k / ↑", "Scroll up"},
		{"tab", "Next page"},
		{"shift+tab", "Previous page"},
		{"", ""},
		{"m", "Toggle navigation menu"},
		{"t", "Theme selector"},
		{"esc", "Close overlay"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	for _, s := range shortcuts {
		if s.key == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, styles.MenuCursor.Width(12).Render(s.key)+styles.Muted.Render(s.desc))
	}

	lines = append(lines, "")
	lines = append(lines, styles.Muted.Render("Press any key to close"))

	return styles.MenuOverlay.Render(strings.Join(lines, "\n"))
}
