package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the TUI
type Styles struct {
	// Text styles
	Text  lipgloss.Style // Primary text
	Muted lipgloss.Style // Secondary/dimmed text
	Title lipgloss.Style // App title

	// Layout styles
	Header  lipgloss.Style // Header bar
	Footer  lipgloss.Style // Footer/shortcut bar
	Page    lipgloss.Style // Page content panel
	Divider lipgloss.Style // Section divider

	// Navigation
	Nav         lipgloss.Style // Inline nav bar (wide layout)
	NavLink     lipgloss.Style // Nav link
	NavActive   lipgloss.Style // Active page link
	MenuOverlay lipgloss.Style // Navigation overlay container
	MenuTitle   lipgloss.Style // Overlay title
	MenuCursor  lipgloss.Style // Selected row indicator
	Scrim       lipgloss.Style // Dimmed background behind the overlay

	// Theme selector
	SelectorOverlay lipgloss.Style
	SelectorOption  lipgloss.Style
	SelectorCurrent lipgloss.Style
}

// NewStyles creates styles from the theme
func NewStyles(t Theme) Styles {
	s := Styles{}

	s.Text = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.Muted)
	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)

	s.Header = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	s.Footer = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	s.Page = lipgloss.NewStyle().
		Border(BorderRounded).
		BorderForeground(t.Border).
		Padding(0, 1)

	s.Divider = lipgloss.NewStyle().
		Foreground(t.Faint)

	s.Nav = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	s.NavLink = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	s.NavActive = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Padding(0, 1)

	s.MenuOverlay = lipgloss.NewStyle().
		Border(BorderRounded).
		BorderForeground(t.Border).
		Padding(1, 2).
		Background(t.Surface)

	s.MenuTitle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		MarginBottom(1)

	s.MenuCursor = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	s.Scrim = lipgloss.NewStyle().
		Foreground(t.Faint).
		Background(t.Scrim)

	s.SelectorOverlay = lipgloss.NewStyle().
		Border(BorderRounded).
		BorderForeground(t.Border).
		Padding(1, 2).
		Background(t.Surface)

	s.SelectorOption = lipgloss.NewStyle().
		Foreground(t.Muted)

	s.SelectorCurrent = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	return s
}

// DefaultStyles returns styles for the light palette
func DefaultStyles() Styles {
	return NewStyles(Light)
}
