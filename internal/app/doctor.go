package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shade/internal/app/appearance"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check setup + show how the appearance gets resolved",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			p, err := configFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Config file: %s\n", p)
			if _, err := os.Stat(p); err != nil {
				fmt.Fprintln(out, "  not present (defaults apply; run `shade config --init`)")
			} else if _, err := loadConfigFile(); err != nil {
				fmt.Fprintf(out, "  UNREADABLE: %v (treated as absent)\n", err)
			} else {
				fmt.Fprintln(out, "  ok")
			}

			pref, ok := newPrefStore().Load()
			if !ok {
				fmt.Fprintf(out, "Preference: none persisted (default %s)\n", appearance.DefaultPreference)
				pref = appearance.DefaultPreference
			} else {
				fmt.Fprintf(out, "Preference: %s\n", pref)
			}

			fmt.Fprintf(out, "TERM: %s\n", os.Getenv("TERM"))
			fmt.Fprintf(out, "TTY: %v\n", term.IsTerminal(int(os.Stdout.Fd())))

			scheme := appearance.DefaultSchemeResolver().Resolve()
			source := scheme.Source
			if source == "" {
				source = "fallback (light)"
			}
			fmt.Fprintf(out, "OS scheme: dark=%v (via %s)\n", scheme.PrefersDark, source)
			fmt.Fprintf(out, "Resolved: %s\n", appearance.Resolve(pref, scheme.PrefersDark))
			return nil
		},
	}
}
