package app

import (
	"time"

	"shade/internal/app/appearance"
)

const (
	appName = "shade"

	defaultSchemeCheck = 2 * time.Second
)

// Config is the effective runtime configuration.
type Config struct {
	Theme            appearance.Preference
	CheckSchemeEvery time.Duration
}

// ConfigFile is the on-disk shape. The "theme" key holds the raw
// preference, never the resolved value.
type ConfigFile struct {
	Theme            string `json:"theme,omitempty"`
	CheckSchemeEvery string `json:"check_scheme_every,omitempty"`
}
