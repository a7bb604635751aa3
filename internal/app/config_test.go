package app

import (
	"testing"
	"time"

	"shade/internal/app/appearance"
)

func TestApplyConfigFile(t *testing.T) {
	base := defaultConfig()

	cfg := applyConfigFile(base, ConfigFile{Theme: "dark", CheckSchemeEvery: "5s"})
	if cfg.Theme != appearance.PreferenceDark {
		t.Fatalf("expected dark, got %q", cfg.Theme)
	}
	if cfg.CheckSchemeEvery != 5*time.Second {
		t.Fatalf("expected 5s, got %s", cfg.CheckSchemeEvery)
	}
}

func TestApplyConfigFileSkipsBadValues(t *testing.T) {
	base := defaultConfig()

	cfg := applyConfigFile(base, ConfigFile{Theme: "sepia", CheckSchemeEvery: "soon"})
	if cfg.Theme != appearance.DefaultPreference {
		t.Fatalf("expected default theme, got %q", cfg.Theme)
	}
	if cfg.CheckSchemeEvery != base.CheckSchemeEvery {
		t.Fatalf("expected default interval, got %s", cfg.CheckSchemeEvery)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Theme != appearance.PreferenceDevice {
		t.Fatalf("expected device default, got %q", cfg.Theme)
	}
	if cfg.CheckSchemeEvery <= 0 {
		t.Fatalf("expected positive interval")
	}
}
