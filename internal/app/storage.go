package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"shade/internal/app/appearance"
)

func appDir() (string, error) {
	if v := os.Getenv("SHADE_HOME"); strings.TrimSpace(v) != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

func ensureAppDir() error {
	ad, err := appDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(ad, 0o700)
}

func configFilePath() (string, error) {
	ad, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(ad, "config.json"), nil
}

func loadConfigFile() (ConfigFile, error) {
	p, err := configFilePath()
	if err != nil {
		return ConfigFile{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return ConfigFile{}, err
	}
	var cf ConfigFile
	if err := json.Unmarshal(b, &cf); err != nil {
		return ConfigFile{}, err
	}
	return cf, nil
}

func saveConfigFile(cf ConfigFile) error {
	if err := ensureAppDir(); err != nil {
		return err
	}
	p, err := configFilePath()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// prefStore persists the appearance preference in the config file.
// It implements appearance.Store: a missing or unreadable file, or an
// unknown persisted value, is reported as absence, never an error.
type prefStore struct{}

func newPrefStore() prefStore { return prefStore{} }

func (prefStore) Load() (appearance.Preference, bool) {
	cf, err := loadConfigFile()
	if err != nil {
		return "", false
	}
	p, err := appearance.ParsePreference(cf.Theme)
	if err != nil {
		return "", false
	}
	return p, true
}

func (prefStore) Save(p appearance.Preference) error {
	// Read-modify-write so unrelated config keys survive.
	cf, _ := loadConfigFile()
	cf.Theme = string(p)
	return saveConfigFile(cf)
}
