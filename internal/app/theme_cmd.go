package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"shade/internal/app/appearance"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the appearance preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the persisted preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := newPrefStore().Load()
			if !ok {
				p = appearance.DefaultPreference
			}
			fmt.Println(p)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set [light|dark|device]",
		Short: "Persist an appearance preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				if err := promptPreference(&raw); err != nil {
					return err
				}
			}
			p, err := appearance.ParsePreference(raw)
			if err != nil {
				return err
			}
			if err := newPrefStore().Save(p); err != nil {
				return err
			}
			resolved := appearance.Resolve(p, appearance.DefaultSchemeResolver().PrefersDark())
			fmt.Printf("Theme set to %s (resolves to %s)\n", p, resolved)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted preference (back to the device default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := loadConfigFile()
			if err != nil {
				fmt.Println("Nothing persisted.")
				return nil
			}
			cf.Theme = ""
			if err := saveConfigFile(cf); err != nil {
				return err
			}
			fmt.Printf("Preference cleared; %s applies.\n", appearance.DefaultPreference)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the preference, detected OS scheme, and resolved theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			printThemeStatus()
			return nil
		},
	})

	return cmd
}

func promptPreference(out *string) error {
	current, ok := newPrefStore().Load()
	if !ok {
		current = appearance.DefaultPreference
	}
	*out = string(current)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Appearance").
				Description("\"device\" follows the operating system's color scheme.").
				Options(
					huh.NewOption("Light", string(appearance.PreferenceLight)),
					huh.NewOption("Dark", string(appearance.PreferenceDark)),
					huh.NewOption("Device (follow OS)", string(appearance.PreferenceDevice)),
				).
				Value(out),
		),
	)
	return form.Run()
}

func printThemeStatus() {
	pref, ok := newPrefStore().Load()
	if !ok {
		pref = appearance.DefaultPreference
	}
	scheme := appearance.DefaultSchemeResolver().Resolve()
	resolved := appearance.Resolve(pref, scheme.PrefersDark)

	osScheme := "light"
	if scheme.PrefersDark {
		osScheme = "dark"
	}
	source := scheme.Source
	if source == "" {
		source = "fallback"
	}

	tw := prettytable.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(prettytable.StyleLight)
	tw.AppendHeader(prettytable.Row{"PREFERENCE", "OS SCHEME", "SOURCE", "RESOLVED"})
	tw.AppendRow(prettytable.Row{string(pref), osScheme, source, string(resolved)})
	tw.Render()
}
