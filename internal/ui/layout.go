package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// subtitle and the sidebar collapses regardless of preference.
	LayoutCompactWidth = 80

	// SidebarWidth is the expanded sidebar width, borders included.
	SidebarWidth = 22

	// SidebarCollapsedWidth fits a two-letter page marker.
	SidebarCollapsedWidth = 6
)

// Chart limits.
const (
	// BarChartRows is how many bars a chart shows before truncating.
	BarChartRows = 10

	// BarLabelWidth is the label column width of bar charts.
	BarLabelWidth = 18
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads the state store.
	DefaultUIInterval = time.Second

	// ReloadTimeout bounds a manual section reload.
	ReloadTimeout = 30 * time.Second
)
