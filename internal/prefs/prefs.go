// Package prefs holds the user preferences shared by every view: interface
// language, color theme, and whether the sidebar is collapsed.
// Preferences are stored in ~/.config/orgmine/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Language is an interface language code.
type Language string

const (
	English    Language = "en"
	Indonesian Language = "id"
)

// Languages lists the supported languages in menu order.
var Languages = []Language{English, Indonesian}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == English || l == Indonesian
}

// Next returns the other language.
func (l Language) Next() Language {
	if l == English {
		return Indonesian
	}
	return English
}

// Theme is a color scheme choice. ThemeSystem follows the terminal.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Themes lists the supported themes in cycle order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Next returns the theme after t in the cycle light, dark, system.
func (t Theme) Next() Theme {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeSystem
	default:
		return ThemeLight
	}
}

// Preferences is a snapshot of the user's settings.
type Preferences struct {
	Language         Language `toml:"language"`
	Theme            Theme    `toml:"theme"`
	SidebarCollapsed bool     `toml:"sidebar_collapsed"`
}

// Defaults returns English, the system theme, and an expanded sidebar.
func Defaults() Preferences {
	return Preferences{Language: English, Theme: ThemeSystem}
}

const defaultPrefsPath = "~/.config/orgmine/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Missing or unreadable files
// yield defaults, and fields holding unknown values fall back to their
// defaults individually.
func Load(path string) Preferences {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	var raw struct {
		Language         string `toml:"language"`
		Theme            string `toml:"theme"`
		SidebarCollapsed bool   `toml:"sidebar_collapsed"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return prefs
	}

	if lang := Language(strings.ToLower(strings.TrimSpace(raw.Language))); lang.Valid() {
		prefs.Language = lang
	}
	if theme := Theme(strings.ToLower(strings.TrimSpace(raw.Theme))); theme.Valid() {
		prefs.Theme = theme
	}
	prefs.SidebarCollapsed = raw.SidebarCollapsed
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Preferences) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
