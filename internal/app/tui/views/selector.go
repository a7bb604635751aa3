package views

import (
	"strings"

	"shade/internal/app/appearance"
	"shade/internal/app/tui/theme"
)

// RenderThemeSelector renders the appearance selector overlay. cursor
// is the highlighted option; current is the persisted preference.
func RenderThemeSelector(cursor int, current appearance.Preference, styles theme.Styles) string {
	lines := []string{
		styles.MenuTitle.Render("Appearance"),
	}

	for i, p := range appearance.Preferences {
		indicator := "  "
		if i == cursor {
			indicator = styles.MenuCursor.Render("▶ ")
		}
		label := string(p)
		if p == appearance.PreferenceDevice {
			label = "device (follow OS)"
		}
		style := styles.SelectorOption
		if p == current {
			style = styles.SelectorCurrent
			label += " ✓"
		}
		lines = append(lines, indicator+style.Render(label))
	}

	lines = append(lines, "")
	lines = append(lines, styles.Muted.Render("enter apply · esc close"))

	return styles.SelectorOverlay.Render(strings.Join(lines, "\n"))
}
