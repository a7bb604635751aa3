package views

// Page is one navigable content page
type Page struct {
	Slug  string
	Title string
	Body  string
}

// DefaultPages returns the built-in pages in navigation order
func DefaultPages() []Page {
	return []Page{
		{
			Slug:  "home",
			Title: "Home",
			Body: `Welcome to shade.

shade keeps your terminal pages readable in any light. Pick an
appearance below or let it follow your system:

  light   always use the light palette
  dark    always use the dark palette
  device  follow the operating system's color scheme

Press t to open the theme selector, m for the navigation menu.`,
		},
		{
			Slug:  "guide",
			Title: "Guide",
			Body: `Getting around

  m            toggle the navigation menu
  t            open the theme selector
  j/k, ↑/↓     scroll the page
  tab          next page
  esc          dismiss an overlay
  ?            help

While the menu is open the page does not scroll. Selecting a link
closes the menu and jumps to that page. Widening the window past the
inline-navigation threshold closes the menu as well, since the links
move into the header.`,
		},
		{
			Slug:  "themes",
			Title: "Themes",
			Body: `How resolution works

Your choice is saved as-is, including "device". The palette you see
is derived from it every time it matters: an explicit light or dark
choice is used verbatim, while "device" asks the terminal whether its
background is dark and follows along live, no restart needed.

Set SHADE_COLOR_SCHEME=light or =dark to override detection.`,
		},
		{
			Slug:  "about",
			Title: "About",
			Body: `shade is a small demonstration of appearance management for
terminal applications: one persisted preference, one resolved
palette, and a navigation overlay that stays out of your way.`,
		},
	}
}

// IndexBySlug returns the position of slug in pages, or -1
func IndexBySlug(pages []Page, slug string) int {
	for i, p := range pages {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}
