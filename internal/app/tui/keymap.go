package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all key bindings for the TUI
type KeyMap struct {
	// Navigation
	UpDown   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Quit     key.Binding

	// Overlays
	Menu  key.Binding
	Theme key.Binding
	Help  key.Binding

	// Overlay interaction
	Select  key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		UpDown:   key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "scroll")),
		NextPage: key.NewBinding(key.WithKeys("tab", "l"), key.WithHelp("tab", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("shift+tab", "h"), key.WithHelp("shift+tab", "prev page")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Theme, k.UpDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.UpDown, k.NextPage, k.PrevPage},
		{k.Menu, k.Theme, k.Select, k.Dismiss},
		{k.Help, k.Quit},
	}
}
