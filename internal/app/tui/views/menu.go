package views

import (
	"strings"

	"shade/internal/app/tui/theme"
)

// RenderMenuOverlay renders the navigation overlay with one row per
// page link. cursor marks the highlighted link, active the current page.
func RenderMenuOverlay(pages []Page, cursor, active int, styles theme.Styles) string {
	lines := []string{
		styles.MenuTitle.Render("Navigate"),
	}

	for i, p := range pages {
		indicator := "  "
		if i == cursor {
			indicator = styles.MenuCursor.Render("▶ ")
		}
		label := p.Title
		if i == active {
			label += " •"
		}
		style := styles.Text
		if i != cursor {
			style = styles.Muted
		}
		lines = append(lines, indicator+style.Render(label))
	}

	lines = append(lines, "")
	lines = append(lines, styles.Muted.Render("enter select · esc close"))

	return styles.MenuOverlay.Render(strings.Join(lines, "\n"))
}
