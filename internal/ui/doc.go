// Package ui provides the orgmine terminal dashboard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds navigation state and the
// interactive tables; everything else is read on demand: preferences from
// the prefs.Store, section data from the state.Store snapshot that a tick
// re-reads every second.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and Run
//   - pages.go: the page list and which data section each page shows
//   - views.go: one render function per page
//   - table.go: the generic search/sort/paginate table pane
//   - chartview.go: bar charts, the utilization heatmap and the BPMN stages
//   - header.go: title bar, connection status and command hints
//   - help.go: the keyboard shortcut overlay
//   - theme.go: light and dark palettes and system theme resolution
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ orgmine  Organizational Mining      Language  Theme │ header
//	│ /:Search  1-9:Sort  tab:Jump  r:Reload  ?:Help      │ command bar
//	├──────────┬──────────────────────────────────────────┤
//	│ Dashboard│┌──────────────── Roles ─────────────────┐│
//	│ Tables   ││ page content                           ││
//	│ ...      │└────────────────────────────────────────┘│
//	└──────────┴──────────────────────────────────────────┘
//
// The sidebar collapses to two-letter markers when the preference says so or
// the terminal is narrower than LayoutCompactWidth.
//
// # Preferences
//
// Language, theme and sidebar keys call the prefs.Store setters. A store
// subscription wakes the program so changes made elsewhere are rendered too.
// The system theme follows the terminal background, detected once at
// startup.
//
// # Tables
//
// Each table keeps its own tableview.ViewState. Search text goes to page 1,
// the number keys toggle sorting by column, and every render derives the
// visible page from scratch, clamping the page number when a search shrinks
// the result.
package ui
