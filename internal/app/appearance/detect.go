package appearance

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Scheme is the operating system's color-scheme signal as seen by one
// detection pass. Source names the detector that produced it; empty
// means the fallback (light) was used.
type Scheme struct {
	PrefersDark bool
	Source      string
}

// Detector reports whether the environment prefers a dark appearance.
// Detectors that cannot answer return ok=false and the resolver moves
// on to the next one.
type Detector interface {
	Name() string
	Detect() (prefersDark bool, ok bool)
}

// SchemeResolver queries detectors in order and falls back to light
// when none can answer. The zero value uses no detectors and always
// reports light.
type SchemeResolver struct {
	detectors []Detector
}

// NewSchemeResolver builds a resolver over the given detectors,
// highest priority first.
func NewSchemeResolver(detectors ...Detector) *SchemeResolver {
	return &SchemeResolver{detectors: detectors}
}

// Resolve runs the detectors and returns the first answer.
func (r *SchemeResolver) Resolve() Scheme {
	for _, d := range r.detectors {
		if dark, ok := d.Detect(); ok {
			return Scheme{PrefersDark: dark, Source: d.Name()}
		}
	}
	return Scheme{}
}

// PrefersDark is a convenience wrapper around Resolve.
func (r *SchemeResolver) PrefersDark() bool {
	return r.Resolve().PrefersDark
}

// DefaultSchemeResolver returns the resolver used by the app: an
// explicit environment override first, then the terminal background.
func DefaultSchemeResolver() *SchemeResolver {
	return NewSchemeResolver(EnvDetector{}, TerminalDetector{})
}

// EnvDetector honors the SHADE_COLOR_SCHEME variable ("dark"/"light").
// Anything else means the detector has no answer.
type EnvDetector struct{}

func (EnvDetector) Name() string { return "env" }

func (EnvDetector) Detect() (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(os.Getenv("SHADE_COLOR_SCHEME"))) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// TerminalDetector asks the terminal whether its background is dark.
// Non-TTY output (pipes, CI) yields no answer so the fallback applies.
type TerminalDetector struct{}

func (TerminalDetector) Name() string { return "terminal" }

func (TerminalDetector) Detect() (bool, bool) {
	if !isTerminalOutput() {
		return false, false
	}
	return lipgloss.HasDarkBackground(), true
}

func isTerminalOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
