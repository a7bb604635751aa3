package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shade/internal/app/appearance"
)

func defaultConfig() Config {
	return Config{
		Theme:            appearance.DefaultPreference,
		CheckSchemeEvery: defaultSchemeCheck,
	}
}

func loadConfig() Config {
	cfg := defaultConfig()

	cf, err := loadConfigFile()
	if err != nil {
		return cfg
	}
	return applyConfigFile(cfg, cf)
}

// applyConfigFile overlays persisted values onto cfg. Unknown or
// malformed values are skipped so a stale file never breaks startup.
func applyConfigFile(cfg Config, cf ConfigFile) Config {
	if p, err := appearance.ParsePreference(cf.Theme); err == nil {
		cfg.Theme = p
	}
	if cf.CheckSchemeEvery != "" {
		if d, err := time.ParseDuration(cf.CheckSchemeEvery); err == nil && d > 0 {
			cfg.CheckSchemeEvery = d
		}
	}
	return cfg
}

func newConfigCmd() *cobra.Command {
	var (
		show bool
		init bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize shade config",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := configFilePath()
			if err != nil {
				return err
			}
			if init {
				if _, err := os.Stat(p); err == nil {
					fmt.Printf("Config already exists: %s\n", p)
					return nil
				}
				cf := ConfigFile{
					Theme:            string(appearance.DefaultPreference),
					CheckSchemeEvery: defaultSchemeCheck.String(),
				}
				if err := saveConfigFile(cf); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", p)
				return nil
			}
			if show {
				cfg := loadConfig()
				fmt.Printf("Config file: %s\n", p)
				fmt.Printf("  theme: %s\n", cfg.Theme)
				fmt.Printf("  check_scheme_every: %s\n", cfg.CheckSchemeEvery)
				return nil
			}
			_ = cmd.Help()
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", true, "Show config (default)")
	cmd.Flags().BoolVar(&init, "init", false, "Write a default config file if missing")
	return cmd
}
