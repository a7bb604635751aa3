package components

import (
	"shade/internal/app/appearance"
	"shade/internal/app/tui/theme"
)

// RenderStatusBar renders the bottom bar: current preference and
// resolved palette on the left, short key help on the right.
func RenderStatusBar(pref appearance.Preference, resolved appearance.Resolved, helpView string, styles theme.Styles) string {
	label := string(pref)
	if pref == appearance.PreferenceDevice {
		label += " → " + string(resolved)
	}
	return styles.Footer.Render(styles.Muted.Render("theme: "+label) + "  " + helpView)
}
