// Package app provides the orchestration layer for orgmine.
//
// # Overview
//
// This package wires together configuration, logging, preferences, the
// analytics client, the section loader and the UI. It is the composition
// root where all dependencies are initialized and connected.
//
// # Startup
//
//  1. Load config from ~/.config/orgmine/config.toml (defaults when missing)
//  2. Open the zap log file; the TUI owns the terminal so nothing goes to stderr
//  3. Load saved preferences into a prefs.Store and subscribe a writer
//  4. Create the analytics client and the shared state.Store
//  5. Start the Loader on its own goroutine
//  6. Run the TUI and block until the user quits
//
// # Loading
//
//	┌─────────────────────────────────────────────┐
//	│ Loader.Run()                                │
//	│  ├─> LoadAll()  one goroutine per section   │
//	│  │    └─> fetch()  requests of a section    │
//	│  │         run in parallel, all must pass   │
//	│  └─> retry failed sections with backoff     │
//	│      (2s, 4s, 8s, 16s, then every 30s)      │
//	└─────────────────────────────────────────────┘
//
// A failed section keeps the data it had and records the error, so one
// broken endpoint never blanks the rest of the dashboard. The UI may reload
// a single section at any time through LoadSection; a failure there wakes
// the retry loop.
//
// There is no periodic polling. Analytics results change when the backend
// re-mines its event log, which is rare enough that a manual refresh is the
// expected workflow.
//
// # Preferences
//
// PersistPreferences saves the store after every change when
// persist_preferences is on. A failed save is logged and otherwise ignored.
package app
