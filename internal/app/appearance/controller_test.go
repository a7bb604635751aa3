package appearance

import "testing"

type fakeStore struct {
	value   Preference
	present bool
	saves   []Preference
	saveErr error
}

func (s *fakeStore) Load() (Preference, bool) { return s.value, s.present }

func (s *fakeStore) Save(p Preference) error {
	s.saves = append(s.saves, p)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value = p
	s.present = true
	return nil
}

type fakeScheme struct{ dark bool }

func (s *fakeScheme) PrefersDark() bool { return s.dark }

type fakeSurface struct {
	applied  []Resolved
	selector Preference
}

func (s *fakeSurface) ApplyResolved(r Resolved)  { s.applied = append(s.applied, r) }
func (s *fakeSurface) SyncSelector(p Preference) { s.selector = p }

func TestApplyPersistsRawPreference(t *testing.T) {
	store := &fakeStore{}
	surface := &fakeSurface{}
	c := NewController(store, &fakeScheme{dark: true})

	if got := c.Apply(PreferenceLight, surface); got != ResolvedLight {
		t.Fatalf("expected light, got %s", got)
	}
	// The raw preference is persisted even when the scheme is dark.
	if store.value != PreferenceLight {
		t.Fatalf("expected stored light, got %q", store.value)
	}
	if surface.selector != PreferenceLight {
		t.Fatalf("expected selector synced to light, got %q", surface.selector)
	}

	if got := c.Apply(PreferenceDevice, surface); got != ResolvedDark {
		t.Fatalf("expected dark for device under dark scheme, got %s", got)
	}
	if store.value != PreferenceDevice {
		t.Fatalf("expected stored device, got %q", store.value)
	}
}

func TestApplyIdempotent(t *testing.T) {
	surface := &fakeSurface{}
	c := NewController(&fakeStore{}, &fakeScheme{})

	first := c.Apply(PreferenceDark, surface)
	second := c.Apply(PreferenceDark, surface)
	if first != second {
		t.Fatalf("expected identical results, got %s then %s", first, second)
	}
	if surface.applied[len(surface.applied)-1] != ResolvedDark {
		t.Fatalf("expected dark applied, got %v", surface.applied)
	}
	if surface.selector != PreferenceDark {
		t.Fatalf("expected selector dark, got %q", surface.selector)
	}
}

func TestInitFreshSessionDeviceDark(t *testing.T) {
	// Fresh session: nothing persisted, OS reports dark.
	surface := &fakeSurface{}
	c := NewController(&fakeStore{}, &fakeScheme{dark: true})

	if got := c.Init(surface); got != ResolvedDark {
		t.Fatalf("expected dark on load, got %s", got)
	}
	if c.Current() != PreferenceDevice {
		t.Fatalf("expected device default, got %q", c.Current())
	}
	if len(surface.applied) != 1 || surface.applied[0] != ResolvedDark {
		t.Fatalf("expected one dark apply, got %v", surface.applied)
	}
}

func TestInitUsesPersistedPreference(t *testing.T) {
	store := &fakeStore{value: PreferenceLight, present: true}
	surface := &fakeSurface{}
	c := NewController(store, &fakeScheme{dark: true})

	if got := c.Init(surface); got != ResolvedLight {
		t.Fatalf("expected persisted light, got %s", got)
	}
}

func TestSchemeChangedTracksDeviceOnly(t *testing.T) {
	scheme := &fakeScheme{dark: false}
	surface := &fakeSurface{}
	c := NewController(&fakeStore{}, scheme)

	c.Apply(PreferenceDevice, surface)
	scheme.dark = true
	got, changed := c.SchemeChanged(surface)
	if !changed || got != ResolvedDark {
		t.Fatalf("expected device to track dark, got %s changed=%v", got, changed)
	}

	c.Apply(PreferenceLight, surface)
	scheme.dark = false
	if _, changed := c.SchemeChanged(surface); changed {
		t.Fatalf("explicit preference must not react to scheme changes")
	}
}

func TestSaveFailureIsIgnored(t *testing.T) {
	store := &fakeStore{saveErr: errFail}
	surface := &fakeSurface{}
	c := NewController(store, &fakeScheme{})

	if got := c.Apply(PreferenceDark, surface); got != ResolvedDark {
		t.Fatalf("expected dark despite save failure, got %s", got)
	}
	if surface.selector != PreferenceDark {
		t.Fatalf("surface must still be updated on save failure")
	}
}

var errFail = errString("save failed")

type errString string

func (e errString) Error() string { return string(e) }
