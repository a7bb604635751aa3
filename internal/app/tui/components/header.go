package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shade/internal/app/tui/theme"
	"shade/internal/app/tui/views"
)

// RenderHeader renders the top bar: the app title, and the page links
// inline when the layout is wide enough to show them.
func RenderHeader(pages []views.Page, active int, wide bool, styles theme.Styles, width int) string {
	title := styles.Title.Render("shade")

	var nav string
	if wide {
		var links []string
		for i, p := range pages {
			if i == active {
				links = append(links, styles.NavActive.Render(p.Title))
				continue
			}
			links = append(links, styles.NavLink.Render(p.Title))
		}
		nav = strings.Join(links, "")
	}

	left := title + " " + nav
	gap := width - lipgloss.Width(left) - 2
	if gap < 0 {
		gap = 0
	}
	return styles.Header.Width(width).Render(left + strings.Repeat(" ", gap))
}
