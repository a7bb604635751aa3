package appearance

// Store persists the raw preference (never the resolved value) across
// sessions. Load returns ok=false when nothing usable is persisted or
// storage is unavailable; absence is a normal case, not an error.
type Store interface {
	Load() (Preference, bool)
	Save(Preference) error
}

// Surface is the UI binding the controller drives: the host applies
// the resolved appearance and keeps any preference selector in sync.
type Surface interface {
	ApplyResolved(Resolved)
	SyncSelector(Preference)
}

// SchemeSource supplies the current OS dark-scheme signal.
type SchemeSource interface {
	PrefersDark() bool
}

// Controller owns the appearance preference lifecycle: load, apply,
// persist, and live tracking of the OS color scheme.
type Controller struct {
	store  Store
	scheme SchemeSource

	current Preference
}

// NewController wires a controller to its store and scheme source.
func NewController(store Store, scheme SchemeSource) *Controller {
	return &Controller{store: store, scheme: scheme, current: DefaultPreference}
}

// Current returns the preference last applied (or the default before
// Init has run).
func (c *Controller) Current() Preference {
	return c.current
}

// Init loads the persisted preference, falling back to the default,
// and applies it once. Call before the first render so the UI never
// shows the wrong theme.
func (c *Controller) Init(surface Surface) Resolved {
	p := DefaultPreference
	if c.store != nil {
		if loaded, ok := c.store.Load(); ok {
			p = loaded
		}
	}
	return c.Apply(p, surface)
}

// Apply resolves the preference against the current scheme signal,
// hands the resolved value to the surface, persists the raw
// preference, and re-syncs the selector. A failed save means the next
// session starts from the default; nothing is surfaced to the user.
func (c *Controller) Apply(p Preference, surface Surface) Resolved {
	resolved := Resolve(p, c.prefersDark())
	c.current = p

	if surface != nil {
		surface.ApplyResolved(resolved)
		surface.SyncSelector(p)
	}
	if c.store != nil {
		_ = c.store.Save(p)
	}
	return resolved
}

// SchemeChanged re-applies the device preference so the resolved
// appearance tracks the OS live. Explicit light/dark preferences are
// unaffected by scheme changes.
func (c *Controller) SchemeChanged(surface Surface) (Resolved, bool) {
	if c.current != PreferenceDevice {
		return "", false
	}
	return c.Apply(PreferenceDevice, surface), true
}

func (c *Controller) prefersDark() bool {
	if c.scheme == nil {
		return false
	}
	return c.scheme.PrefersDark()
}
