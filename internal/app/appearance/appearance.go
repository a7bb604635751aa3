package appearance

import (
	"fmt"
	"strings"
)

// Preference is the user-chosen appearance setting. PreferenceDevice
// means "follow the operating system's color scheme".
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceDevice Preference = "device"
)

// DefaultPreference is used when nothing has been persisted yet.
const DefaultPreference = PreferenceDevice

// Resolved is the concrete appearance actually applied to the UI.
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

// Preferences lists every valid preference in selector order.
var Preferences = []Preference{PreferenceLight, PreferenceDark, PreferenceDevice}

// ParsePreference validates raw user input (CLI flags, prompts).
// Persisted values go through Load instead, where unknown values fall
// back to the default rather than erroring.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.TrimSpace(strings.ToLower(s))); p {
	case PreferenceLight, PreferenceDark, PreferenceDevice:
		return p, nil
	default:
		return "", fmt.Errorf("invalid theme %q (want light|dark|device)", s)
	}
}

// Resolve computes the concrete appearance for a preference. It is a
// pure function of the preference and the current dark-scheme signal.
func Resolve(p Preference, prefersDark bool) Resolved {
	switch p {
	case PreferenceLight:
		return ResolvedLight
	case PreferenceDark:
		return ResolvedDark
	default:
		if prefersDark {
			return ResolvedDark
		}
		return ResolvedLight
	}
}
