package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings orgmine reads from its config file.
type Config struct {
	APIBaseURL         string
	Timeout            time.Duration
	RequestsPerSecond  float64
	RetryInterval      time.Duration
	LogFile            string
	PrefsPath          string
	PersistPreferences bool
	Filters            Filters
}

// Filters are the initial query parameters for the analytics endpoints.
type Filters struct {
	StartMonth string // YYYY-MM
	EndMonth   string // YYYY-MM
	Month      string // YYYY-MM
	Year       string // YYYY, empty for all years
	TopLimit   int
}

const (
	defaultConfigPath        = "~/.config/orgmine/config.toml"
	defaultLogFile           = "~/.local/state/orgmine/orgmine.log"
	defaultPrefsPath         = "~/.config/orgmine/prefs.toml"
	defaultAPIBaseURL        = "http://127.0.0.1:8000/api"
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 10
	defaultRetryInterval     = 2 * time.Second
	defaultStartMonth        = "2019-01"
	defaultEndMonth          = "2019-12"
	defaultMonth             = "2024-04"
	defaultTopLimit          = 10
)

var (
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:         defaultAPIBaseURL,
		Timeout:            defaultTimeout,
		RequestsPerSecond:  defaultRequestsPerSecond,
		RetryInterval:      defaultRetryInterval,
		LogFile:            mustExpand(defaultLogFile),
		PrefsPath:          mustExpand(defaultPrefsPath),
		PersistPreferences: true,
		Filters:            DefaultFilters(),
	}
}

// DefaultFilters returns the query parameters the dashboard starts with.
func DefaultFilters() Filters {
	return Filters{
		StartMonth: defaultStartMonth,
		EndMonth:   defaultEndMonth,
		Month:      defaultMonth,
		TopLimit:   defaultTopLimit,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL         string  `toml:"api_base_url"`
		TimeoutSeconds     int     `toml:"timeout_seconds"`
		RequestsPerSecond  float64 `toml:"requests_per_second"`
		RetrySeconds       int     `toml:"retry_seconds"`
		LogFile            string  `toml:"log_file"`
		PrefsPath          string  `toml:"prefs_path"`
		PersistPreferences *bool   `toml:"persist_preferences"`
		Filters            struct {
			StartMonth string `toml:"start_month"`
			EndMonth   string `toml:"end_month"`
			Month      string `toml:"month"`
			Year       string `toml:"year"`
			TopLimit   int    `toml:"top_limit"`
		} `toml:"filters"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if raw.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = raw.RequestsPerSecond
	}
	if raw.RetrySeconds > 0 {
		cfg.RetryInterval = time.Duration(raw.RetrySeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.PrefsPath); v != "" {
		cfg.PrefsPath = mustExpand(v)
	}
	if raw.PersistPreferences != nil {
		cfg.PersistPreferences = *raw.PersistPreferences
	}

	f := raw.Filters
	if v := strings.TrimSpace(f.StartMonth); v != "" {
		cfg.Filters.StartMonth = v
	}
	if v := strings.TrimSpace(f.EndMonth); v != "" {
		cfg.Filters.EndMonth = v
	}
	if v := strings.TrimSpace(f.Month); v != "" {
		cfg.Filters.Month = v
	}
	cfg.Filters.Year = strings.TrimSpace(f.Year)
	if f.TopLimit > 0 {
		cfg.Filters.TopLimit = f.TopLimit
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the API URL and filter formats.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api_base_url %q: %w", c.APIBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api_base_url %q: scheme must be http or https", c.APIBaseURL)
	}
	return c.Filters.Validate()
}

// Validate checks that months are YYYY-MM and the year is YYYY or empty.
func (f Filters) Validate() error {
	for name, v := range map[string]string{"start_month": f.StartMonth, "end_month": f.EndMonth, "month": f.Month} {
		if !monthPattern.MatchString(v) {
			return fmt.Errorf("invalid filters.%s %q: want YYYY-MM", name, v)
		}
	}
	if f.StartMonth > f.EndMonth {
		return fmt.Errorf("filters.start_month %s is after end_month %s", f.StartMonth, f.EndMonth)
	}
	if f.Year != "" && !yearPattern.MatchString(f.Year) {
		return fmt.Errorf("invalid filters.year %q: want YYYY", f.Year)
	}
	return nil
}

// ValidMonth reports whether s is a YYYY-MM month.
func ValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
