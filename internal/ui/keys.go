package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application. Help texts are
// message keys, translated when the help overlay renders.
type keyMap struct {
	// Global
	Quit          key.Binding
	ForceQuit     key.Binding
	Help          key.Binding
	CycleTheme    key.Binding
	Language      key.Binding
	ToggleSidebar key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	Refresh       key.Binding
	Month         key.Binding

	// Tables
	Search     key.Binding
	SortBy     key.Binding
	PageNext   key.Binding
	PagePrev   key.Binding
	PageSize   key.Binding
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Confirm    key.Binding
	Escape     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "help.quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help.help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "help.theme"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "help.language"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "help.sidebar"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab/shift+tab", "help.sections"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "help.refresh"),
		),
		Month: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "help.month"),
		),

		// Tables
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "help.search"),
		),
		SortBy: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "help.sort"),
		),
		PageNext: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("p/n", "help.paging"),
		),
		PagePrev: key.NewBinding(
			key.WithKeys("p", "left"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "help.pageSize"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("j/k", "help.rows"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up", "pgup"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down", "pgdown"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Refresh, k.Language, k.CycleTheme, k.ToggleSidebar, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, grouped by section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.NextPage, k.Refresh, k.Month},
		// Tables
		{k.Search, k.SortBy, k.PageNext, k.PageSize, k.Up},
		// General
		{k.Language, k.CycleTheme, k.ToggleSidebar, k.Help, k.Quit},
	}
}
