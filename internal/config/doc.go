// Package config loads orgmine's TOML configuration file.
//
// # Overview
//
// The config file tells orgmine where the analytics API lives, how patient to
// be with it, where to write logs and preferences, and which months and years
// the analytics pages query first. Every field is optional.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/orgmine/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing, empty or zero, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/orgmine/config.toml
//   - API base URL: http://127.0.0.1:8000/api
//   - Request timeout: 30 seconds
//   - Client rate limit: 10 requests per second
//   - Retry interval after a failed load: 2 seconds, doubling up to 30
//   - Log file: ~/.local/state/orgmine/orgmine.log
//   - Preferences: ~/.config/orgmine/prefs.toml, persisted
//   - Filters: 2019-01 to 2019-12 for evolution, 2024-04 for collaboration,
//     all years for monthly interactions, top 10 role pairs
//
// # TOML Format
//
//	api_base_url = "http://analytics.internal:8000/api"
//	timeout_seconds = 30
//	requests_per_second = 10
//	retry_seconds = 2
//	log_file = "~/.local/state/orgmine/orgmine.log"
//	prefs_path = "~/.config/orgmine/prefs.toml"
//	persist_preferences = true
//
//	[filters]
//	start_month = "2019-01"
//	end_month = "2019-12"
//	month = "2024-04"
//	year = "2019"
//	top_limit = 10
//
// Tilde expansion is performed for log_file and prefs_path.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A base URL that is not http or https
//   - Months that are not YYYY-MM, a start month after the end month, or a
//     year that is not YYYY
//
// Missing config files are NOT an error. orgmine works out of the box against
// a backend running locally on the default port.
package config
