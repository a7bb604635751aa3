package app

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shade/internal/app/appearance"
	"shade/internal/app/tui"
)

// Run executes the CLI and returns a process exit code.
func Run() int {
	baseCfg := loadConfig()

	var (
		flagTheme string
		flagNoTUI bool
	)

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "A themed terminal page viewer (light/dark/device)",
		Long:  "shade renders its pages with a persisted appearance preference. \"device\" follows the operating system's color scheme live; a navigation overlay gets you between pages.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagTheme != "" {
				p, err := appearance.ParsePreference(flagTheme)
				if err != nil {
					return err
				}
				// The flag behaves like choosing in the selector:
				// the raw preference is persisted before use.
				if err := newPrefStore().Save(p); err != nil {
					return err
				}
			}

			if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) && !flagNoTUI {
				return tui.Run(tui.Config{
					Store:            newPrefStore(),
					Scheme:           appearance.DefaultSchemeResolver(),
					CheckSchemeEvery: baseCfg.CheckSchemeEvery,
				})
			}

			printThemeStatus()
			return nil
		},
	}

	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Set and persist the appearance preference: light|dark|device")
	rootCmd.Flags().BoolVar(&flagNoTUI, "no-tui", false, "Force non-interactive output even on a TTY")

	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
