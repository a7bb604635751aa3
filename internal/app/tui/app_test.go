package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"shade/internal/app/appearance"
)

type stubDetector struct{ dark *bool }

func (d stubDetector) Name() string         { return "stub" }
func (d stubDetector) Detect() (bool, bool) { return *d.dark, true }

type memStore struct {
	value   appearance.Preference
	present bool
}

func (s *memStore) Load() (appearance.Preference, bool) { return s.value, s.present }

func (s *memStore) Save(p appearance.Preference) error {
	s.value, s.present = p, true
	return nil
}

func newTestModel(dark *bool, store appearance.Store) *Model {
	return New(Config{
		Store:  store,
		Scheme: appearance.NewSchemeResolver(stubDetector{dark: dark}),
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFreshSessionDarkSchemeResolvesDark(t *testing.T) {
	dark := true
	m := newTestModel(&dark, &memStore{})

	if m.controller.Current() != appearance.PreferenceDevice {
		t.Fatalf("expected device default, got %q", m.controller.Current())
	}
	if m.resolved != appearance.ResolvedDark {
		t.Fatalf("expected dark on load, got %s", m.resolved)
	}
}

func TestMenuToggleAndEscape(t *testing.T) {
	dark := false
	m := newTestModel(&dark, &memStore{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(keyRune('m'))
	if !m.menuOpen || !m.scrollLocked {
		t.Fatalf("expected open menu with scroll lock")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.menuOpen || m.scrollLocked {
		t.Fatalf("expected closed menu with scroll restored")
	}

	// Escape with nothing open changes nothing.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.menuOpen {
		t.Fatalf("escape while closed must be a no-op")
	}
}

func TestMenuLinkNavigates(t *testing.T) {
	dark := false
	m := newTestModel(&dark, &memStore{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(keyRune('m'))
	m.Update(keyRune('j'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.menuOpen {
		t.Fatalf("expected menu closed after link selection")
	}
	if m.active != 1 {
		t.Fatalf("expected navigation to page 1, got %d", m.active)
	}
}

func TestResizeClosesMenuAboveBreakpoint(t *testing.T) {
	dark := false
	m := newTestModel(&dark, &memStore{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(keyRune('m'))
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 24})
	if !m.menuOpen {
		t.Fatalf("narrow resize must keep the menu open")
	}

	m.Update(tea.WindowSizeMsg{Width: 140, Height: 24})
	if m.menuOpen || m.scrollLocked {
		t.Fatalf("wide resize must force-close the menu")
	}
}

func TestSelectorAppliesAndPersists(t *testing.T) {
	dark := true
	store := &memStore{}
	m := newTestModel(&dark, store)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(keyRune('t'))
	if !m.showSelector {
		t.Fatalf("expected selector overlay")
	}

	// Options are light, dark, device; default cursor sits on device.
	m.Update(keyRune('j')) // wraps to light
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.showSelector {
		t.Fatalf("expected selector dismissed after apply")
	}
	if m.resolved != appearance.ResolvedLight {
		t.Fatalf("expected light applied, got %s", m.resolved)
	}
	if store.value != appearance.PreferenceLight {
		t.Fatalf("expected raw preference persisted, got %q", store.value)
	}
}

func TestMouseBackgroundClickClosesMenu(t *testing.T) {
	dark := false
	m := newTestModel(&dark, &memStore{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(keyRune('m'))
	if !m.menuOpen {
		t.Fatalf("expected open menu")
	}

	// (0,0) lands on the dimmed background, not the overlay.
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.menuOpen {
		t.Fatalf("background click must close the menu")
	}
}

func TestSchemeTickTracksDevice(t *testing.T) {
	dark := false
	m := newTestModel(&dark, &memStore{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.resolved != appearance.ResolvedLight {
		t.Fatalf("expected light to start, got %s", m.resolved)
	}

	dark = true
	m.Update(SchemeTickMsg{})
	if m.resolved != appearance.ResolvedDark {
		t.Fatalf("device preference must track the scheme, got %s", m.resolved)
	}

	// An explicit preference ignores further scheme changes.
	m.controller.Apply(appearance.PreferenceLight, m)
	dark = false
	m.Update(SchemeTickMsg{})
	if m.resolved != appearance.ResolvedLight {
		t.Fatalf("explicit light must stay light")
	}
}
