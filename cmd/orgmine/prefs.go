package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/prefs"
)

func newPrefsCmd(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change saved preferences",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := prefsPath(global)
			if err != nil {
				return err
			}
			p := prefs.Load(path)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:     %s\n", path)
			fmt.Fprintf(out, "language: %s\n", p.Language)
			fmt.Fprintf(out, "theme:    %s\n", p.Theme)
			fmt.Fprintf(out, "sidebar:  %s\n", sidebarLabel(p.SidebarCollapsed))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <language|theme|sidebar> <value>",
		Short: "Change one preference and save it",
		Long: `Change one preference and save it.

  language  en, id
  theme     light, dark, system
  sidebar   collapsed, expanded (or true, false)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := prefsPath(global)
			if err != nil {
				return err
			}

			store := prefs.NewStore()
			store.Apply(prefs.Load(path))
			if err := applyPref(store, args[0], args[1]); err != nil {
				return err
			}
			if err := prefs.Save(path, store.Get()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

func prefsPath(global *globalFlags) (string, error) {
	cfg, err := config.Load(global.configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.PrefsPath, nil
}

// applyPref validates value before calling the store, which ignores
// unsupported values silently.
func applyPref(store *prefs.Store, name, value string) error {
	switch name {
	case "language":
		lang := prefs.Language(value)
		if !lang.Valid() {
			return fmt.Errorf("unsupported language %q (have %v)", value, prefs.Languages)
		}
		store.SetLanguage(lang)
	case "theme":
		theme := prefs.Theme(value)
		if !theme.Valid() {
			return fmt.Errorf("unsupported theme %q (have %v)", value, prefs.Themes)
		}
		store.SetTheme(theme)
	case "sidebar":
		collapsed, err := parseSidebar(value)
		if err != nil {
			return err
		}
		store.SetSidebarCollapsed(collapsed)
	default:
		return fmt.Errorf("unknown preference %q (have language, theme, sidebar)", name)
	}
	return nil
}

func parseSidebar(value string) (bool, error) {
	switch value {
	case "collapsed":
		return true, nil
	case "expanded":
		return false, nil
	}
	collapsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid sidebar value %q: want collapsed or expanded", value)
	}
	return collapsed, nil
}

func sidebarLabel(collapsed bool) string {
	if collapsed {
		return "collapsed"
	}
	return "expanded"
}
