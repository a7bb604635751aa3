package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shade/internal/app/appearance"
	"shade/internal/app/tui/components"
	"shade/internal/app/tui/menu"
	"shade/internal/app/tui/theme"
	"shade/internal/app/tui/views"
)

const (
	// wideMinWidth is the column count above which page links render
	// inline in the header and the overlay force-closes.
	wideMinWidth = 100

	defaultSchemeCheck = 2 * time.Second
)

// Config holds the TUI configuration
type Config struct {
	Store  appearance.Store
	Scheme *appearance.SchemeResolver

	// CheckSchemeEvery is how often the OS color scheme is re-read
	// while the preference is "device".
	CheckSchemeEvery time.Duration

	Pages []views.Page
}

// Run starts the TUI with the given config
func Run(cfg Config) error {
	m := New(cfg)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Model is the main TUI model
type Model struct {
	cfg  Config
	keys KeyMap
	help help.Model

	controller *appearance.Controller
	menu       *menu.Controller

	// Pages
	pages  []views.Page
	active int

	// Layout
	width    int
	height   int
	viewport viewport.Model
	ready    bool

	// Appearance surface
	resolved    appearance.Resolved
	palette     theme.Theme
	styles      theme.Styles
	prefersDark bool

	// Overlays
	menuOpen       bool
	menuCursor     int
	scrollLocked   bool
	showSelector   bool
	selectorCursor int
	showHelp       bool
}

// New creates a new TUI model with the appearance already applied, so
// the very first render uses the right palette.
func New(cfg Config) *Model {
	if cfg.Scheme == nil {
		cfg.Scheme = appearance.DefaultSchemeResolver()
	}
	if cfg.CheckSchemeEvery <= 0 {
		cfg.CheckSchemeEvery = defaultSchemeCheck
	}
	pages := cfg.Pages
	if len(pages) == 0 {
		pages = views.DefaultPages()
	}

	m := &Model{
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		menu:  menu.New(wideMinWidth),
		pages: pages,
	}
	m.controller = appearance.NewController(cfg.Store, cfg.Scheme)
	m.controller.Init(m)
	m.prefersDark = cfg.Scheme.PrefersDark()
	return m
}

// ApplyResolved implements appearance.Surface: the resolved theme is
// written onto the whole view by rebuilding the style set.
func (m *Model) ApplyResolved(r appearance.Resolved) {
	m.resolved = r
	m.palette = theme.For(r)
	m.styles = theme.NewStyles(m.palette)
	if m.ready {
		m.setPageContent()
	}
}

// SyncSelector implements appearance.Surface: the selector always
// reflects the preference that was applied.
func (m *Model) SyncSelector(p appearance.Preference) {
	for i, opt := range appearance.Preferences {
		if opt == p {
			m.selectorCursor = i
		}
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.schemeTickCmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.applyMenuEffects(m.menu.HandleResize(msg.Width))

	case SchemeTickMsg:
		if dark := m.cfg.Scheme.PrefersDark(); dark != m.prefersDark {
			m.prefersDark = dark
			m.controller.SchemeChanged(m)
		}
		return m, m.schemeTickCmd()

	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)
	}

	return m, nil
}

// handleKeyMsg dispatches keys to whichever overlay is up
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Help overlay - dismiss on any key
	if m.showHelp {
		m.showHelp = false
		return nil
	}

	if m.showSelector {
		m.handleSelectorKeys(msg)
		return nil
	}

	if m.menuOpen {
		m.handleMenuKeys(msg)
		return nil
	}

	return m.handleNormalKeys(msg)
}

// handleSelectorKeys handles keys while the theme selector is up
func (m *Model) handleSelectorKeys(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.showSelector = false
		// Snap the cursor back to the applied preference.
		m.SyncSelector(m.controller.Current())

	case key.Matches(msg, m.keys.Select):
		m.controller.Apply(appearance.Preferences[m.selectorCursor], m)
		m.showSelector = false

	default:
		switch msg.String() {
		case "j", "down":
			m.selectorCursor = (m.selectorCursor + 1) % len(appearance.Preferences)
		case "k", "up":
			m.selectorCursor = (m.selectorCursor + len(appearance.Preferences) - 1) % len(appearance.Preferences)
		}
	}
}

// handleMenuKeys handles keys while the navigation overlay is open
func (m *Model) handleMenuKeys(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.applyMenuEffects(m.menu.HandleEscape())

	case key.Matches(msg, m.keys.Menu):
		m.applyMenuEffects(m.menu.HandleToggle())

	case key.Matches(msg, m.keys.Select):
		m.applyMenuEffects(m.menu.HandleLinkClick(m.pages[m.menuCursor].Slug))

	default:
		switch msg.String() {
		case "j", "down":
			m.menuCursor = (m.menuCursor + 1) % len(m.pages)
		case "k", "up":
			m.menuCursor = (m.menuCursor + len(m.pages) - 1) % len(m.pages)
		}
	}
}

// handleNormalKeys handles keys with no overlay up
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Menu):
		// Wide layouts show the links inline; no overlay to open.
		if !m.wide() {
			m.applyMenuEffects(m.menu.HandleToggle())
		}

	case key.Matches(msg, m.keys.Theme):
		m.showSelector = true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.NextPage):
		m.setActive((m.active + 1) % len(m.pages))

	case key.Matches(msg, m.keys.PrevPage):
		m.setActive((m.active + len(m.pages) - 1) % len(m.pages))

	default:
		if !m.scrollLocked && m.ready {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}

	return nil
}

// handleMouseMsg maps clicks onto the overlay regions
func (m *Model) handleMouseMsg(msg tea.MouseMsg) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if !m.scrollLocked && m.ready {
			m.viewport, _ = m.viewport.Update(msg)
		}
		return
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if !m.menuOpen {
		return
	}

	if i, ok := m.menuLinkAt(msg.X, msg.Y); ok {
		m.menuCursor = i
		m.applyMenuEffects(m.menu.HandleLinkClick(m.pages[i].Slug))
		return
	}
	// Anything else is the dimmed background.
	m.applyMenuEffects(m.menu.HandleOverlayClick(false))
}

// applyMenuEffects applies a transition's effects in one place so the
// open marker, scroll lock, and navigation never drift apart.
func (m *Model) applyMenuEffects(fx menu.Effects) {
	wasOpen := m.menuOpen
	m.menuOpen = fx.Open
	m.scrollLocked = fx.LockScroll
	if fx.Open && !wasOpen {
		m.menuCursor = m.active
	}
	if fx.Navigate != "" {
		if i := views.IndexBySlug(m.pages, fx.Navigate); i >= 0 {
			m.setActive(i)
		}
	}
}

func (m *Model) setActive(i int) {
	m.active = i
	if m.ready {
		m.setPageContent()
		m.viewport.GotoTop()
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	// Header and footer take one line each, the page border two.
	vpWidth := width - 4
	vpHeight := height - 4
	if vpWidth < 1 {
		vpWidth = 1
	}
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.setPageContent()
}

func (m *Model) setPageContent() {
	page := m.pages[m.active]
	body := m.styles.Title.Render(page.Title) + "\n\n" + page.Body
	m.viewport.SetContent(m.styles.Text.Width(m.viewport.Width).Render(body))
}

func (m *Model) wide() bool {
	return m.width > wideMinWidth
}

func (m *Model) schemeTickCmd() tea.Cmd {
	return tea.Tick(m.cfg.CheckSchemeEvery, func(t time.Time) tea.Msg { return SchemeTickMsg(t) })
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(components.RenderHeader(m.pages, m.active, m.wide(), m.styles, m.width))
	b.WriteString("\n")

	page := m.styles.Page.Width(m.width - 2).Render(m.viewport.View())
	b.WriteString(page)
	b.WriteString("\n")

	b.WriteString(components.RenderStatusBar(m.controller.Current(), m.resolved, m.help.View(m.keys), m.styles))

	base := b.String()

	if m.showHelp {
		return m.overlay(views.RenderHelpOverlay(m.styles), base)
	}
	if m.showSelector {
		return m.overlay(views.RenderThemeSelector(m.selectorCursor, m.controller.Current(), m.styles), base)
	}
	if m.menuOpen {
		return m.overlay(views.RenderMenuOverlay(m.pages, m.menuCursor, m.active, m.styles), base)
	}

	return base
}

// overlay centers content over the base view with a dimmed backdrop
func (m *Model) overlay(content, base string) string {
	return lipgloss.Place(
		lipgloss.Width(base),
		lipgloss.Height(base),
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(m.palette.Scrim),
	)
}

// Menu overlay geometry, matching RenderMenuOverlay: one line of
// border and one of padding above the title, one blank line below it,
// then one row per link.
const (
	menuRowsAbove = 4
)

func (m *Model) menuLinkAt(x, y int) (int, bool) {
	content := views.RenderMenuOverlay(m.pages, m.menuCursor, m.active, m.styles)
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x0 := (m.width - w) / 2
	y0 := (m.height - h) / 2

	if x < x0+1 || x >= x0+w-1 {
		return 0, false
	}
	i := y - y0 - menuRowsAbove
	if i < 0 || i >= len(m.pages) {
		return 0, false
	}
	return i, true
}
