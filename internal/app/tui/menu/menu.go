// Package menu implements the navigation overlay state machine: two
// states, a handful of dismissal triggers, and explicit side effects
// so the host UI can stay a thin binding layer.
package menu

// State is the overlay state. The zero value is Closed.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// DefaultBreakpoint is the layout width above which the overlay is
// force-closed: wide layouts show the navigation inline instead.
const DefaultBreakpoint = 768

// Effects describes what the host must apply after a transition.
// Markers and scroll lock always travel together so one handler
// updates everything atomically.
type Effects struct {
	// Open mirrors the next state; the host sets or clears its
	// active markers from it.
	Open bool
	// LockScroll suppresses content scrolling while the overlay is up.
	LockScroll bool
	// Navigate carries the activated link target, if any. Navigation
	// itself is never suppressed by the overlay closing.
	Navigate string
}

// Controller holds the overlay state and its layout breakpoint.
// A zero Controller is closed and uses DefaultBreakpoint.
type Controller struct {
	state      State
	Breakpoint int
}

// New returns a closed controller with the given breakpoint; values
// <= 0 fall back to DefaultBreakpoint.
func New(breakpoint int) *Controller {
	return &Controller{Breakpoint: breakpoint}
}

// State returns the current overlay state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the overlay is showing.
func (c *Controller) IsOpen() bool { return c.state == Open }

// HandleToggle flips the overlay state.
func (c *Controller) HandleToggle() Effects {
	if c.state == Open {
		return c.transition(Closed)
	}
	return c.transition(Open)
}

// HandleOverlayClick handles a click on the dimmed background. Clicks
// on child links are routed through HandleLinkClick instead; onLink
// guards against a host that cannot tell the regions apart.
func (c *Controller) HandleOverlayClick(onLink bool) Effects {
	if c.state != Open || onLink {
		return c.effects()
	}
	return c.transition(Closed)
}

// HandleLinkClick closes the overlay and reports the activated target
// so the host can navigate.
func (c *Controller) HandleLinkClick(target string) Effects {
	if c.state != Open {
		return c.effects()
	}
	fx := c.transition(Closed)
	fx.Navigate = target
	return fx
}

// HandleEscape closes an open overlay; no-op when closed.
func (c *Controller) HandleEscape() Effects {
	if c.state != Open {
		return c.effects()
	}
	return c.transition(Closed)
}

// HandleResize force-closes the overlay when the width crosses above
// the breakpoint, regardless of current state.
func (c *Controller) HandleResize(width int) Effects {
	if width > c.breakpoint() {
		return c.transition(Closed)
	}
	return c.effects()
}

func (c *Controller) breakpoint() int {
	if c.Breakpoint > 0 {
		return c.Breakpoint
	}
	return DefaultBreakpoint
}

func (c *Controller) transition(next State) Effects {
	c.state = next
	return c.effects()
}

func (c *Controller) effects() Effects {
	open := c.state == Open
	return Effects{Open: open, LockScroll: open}
}
