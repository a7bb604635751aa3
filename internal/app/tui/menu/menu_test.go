package menu

import "testing"

func TestToggleFlipsState(t *testing.T) {
	c := New(0)
	if c.State() != Closed {
		t.Fatalf("expected initial closed, got %s", c.State())
	}

	fx := c.HandleToggle()
	if c.State() != Open || !fx.Open || !fx.LockScroll {
		t.Fatalf("expected open with locked scroll, got state=%s fx=%+v", c.State(), fx)
	}

	fx = c.HandleToggle()
	if c.State() != Closed || fx.Open || fx.LockScroll {
		t.Fatalf("expected closed with scroll restored, got state=%s fx=%+v", c.State(), fx)
	}
}

func TestEscape(t *testing.T) {
	c := New(0)

	// Escape while closed: no change.
	if fx := c.HandleEscape(); fx.Open || c.State() != Closed {
		t.Fatalf("escape while closed must be a no-op")
	}

	c.HandleToggle()
	if fx := c.HandleEscape(); fx.Open || c.State() != Closed {
		t.Fatalf("escape while open must close")
	}
}

func TestLinkClickClosesAndNavigates(t *testing.T) {
	c := New(0)
	c.HandleToggle()

	fx := c.HandleLinkClick("guide")
	if c.State() != Closed {
		t.Fatalf("expected closed after link click, got %s", c.State())
	}
	if fx.Navigate != "guide" {
		t.Fatalf("navigation must proceed, got %q", fx.Navigate)
	}

	// Closed overlay ignores link clicks.
	if fx := c.HandleLinkClick("about"); fx.Navigate != "" {
		t.Fatalf("closed overlay must not navigate, got %q", fx.Navigate)
	}
}

func TestOverlayClick(t *testing.T) {
	c := New(0)
	c.HandleToggle()

	// A click that lands on a link is not a background dismissal.
	if fx := c.HandleOverlayClick(true); !fx.Open {
		t.Fatalf("link click must not close via overlay handler")
	}

	if fx := c.HandleOverlayClick(false); fx.Open || c.State() != Closed {
		t.Fatalf("background click while open must close")
	}
}

func TestResizeBreakpoint(t *testing.T) {
	c := New(0)
	c.HandleToggle()

	// Below the breakpoint the overlay stays open.
	if fx := c.HandleResize(500); !fx.Open || c.State() != Open {
		t.Fatalf("expected open at width 500, got %s", c.State())
	}

	// Crossing above the breakpoint force-closes.
	if fx := c.HandleResize(1024); fx.Open || c.State() != Closed {
		t.Fatalf("expected closed at width 1024, got %s", c.State())
	}

	// Force-close applies regardless of state.
	if fx := c.HandleResize(1024); fx.Open || c.State() != Closed {
		t.Fatalf("expected closed to stay closed at width 1024")
	}
}

func TestCustomBreakpoint(t *testing.T) {
	c := New(100)
	c.HandleToggle()

	if c.HandleResize(100); c.State() != Open {
		t.Fatalf("width equal to breakpoint must not close")
	}
	if c.HandleResize(101); c.State() != Closed {
		t.Fatalf("width above breakpoint must close")
	}
}
