package theme

import (
	"github.com/charmbracelet/lipgloss"

	"shade/internal/app/appearance"
)

// Theme defines a complete color scheme for the TUI
type Theme struct {
	Name string

	// Background layers
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color

	// Text hierarchy
	Text  lipgloss.Color
	Muted lipgloss.Color
	Faint lipgloss.Color

	// Accent
	Accent   lipgloss.Color
	AccentFg lipgloss.Color

	// Scrim dims the page behind the navigation overlay
	Scrim lipgloss.Color
}

// Dark is the dark palette
var Dark = Theme{
	Name:     "dark",
	Base:     "#1e1e2e",
	Surface:  "#2a2a3c",
	Border:   "#3a3a4c",
	Text:     "#cdd6f4",
	Muted:    "#6c7086",
	Faint:    "#45475a",
	Accent:   "#89b4fa",
	AccentFg: "#1e1e2e",
	Scrim:    "#11111b",
}

// Light is the light palette
var Light = Theme{
	Name:     "light",
	Base:     "#eff1f5",
	Surface:  "#e6e9ef",
	Border:   "#bcc0cc",
	Text:     "#4c4f69",
	Muted:    "#8c8fa1",
	Faint:    "#ccd0da",
	Accent:   "#1e66f5",
	AccentFg: "#eff1f5",
	Scrim:    "#dce0e8",
}

// For maps a resolved appearance to its palette
func For(r appearance.Resolved) Theme {
	if r == appearance.ResolvedDark {
		return Dark
	}
	return Light
}
