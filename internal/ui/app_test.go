package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/state"
)

type fakeLoader struct {
	mu       sync.Mutex
	filters  config.Filters
	sections []state.Section
	loadAll  int
}

func (f *fakeLoader) LoadAll(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadAll++
	return nil
}

func (f *fakeLoader) LoadSection(_ context.Context, sec state.Section) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sections = append(f.sections, sec)
	return nil
}

func (f *fakeLoader) SetMonth(month string) error {
	if !config.ValidMonth(month) {
		return errors.New("invalid month")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters.Month = month
	return nil
}

func (f *fakeLoader) Filters() config.Filters {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters
}

func newTestModel(t *testing.T) (Model, *prefs.Store, *fakeLoader) {
	t.Helper()
	store := prefs.NewStore()
	loader := &fakeLoader{filters: config.DefaultFilters()}
	m := New(Options{
		Prefs:             store,
		State:             &state.Store{},
		Loader:            loader,
		HasDarkBackground: func() bool { return true },
	})
	t.Cleanup(m.Close)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, store, loader
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, runes(string(r)))
	}
	return m
}

func TestModel_PreferenceKeys(t *testing.T) {
	m, store, _ := newTestModel(t)

	before := store.Theme()
	m = update(t, m, runes("T"))
	assert.Equal(t, before.Next(), store.Theme())

	m = update(t, m, runes("L"))
	assert.Equal(t, prefs.Indonesian, store.Language())

	update(t, m, runes("["))
	assert.True(t, store.SidebarCollapsed())
}

func TestModel_ThemeFollowsSystemBackground(t *testing.T) {
	m, store, _ := newTestModel(t)
	require.Equal(t, prefs.ThemeSystem, store.Theme())
	assert.Equal(t, prefs.ThemeDark, m.theme().Name)

	store.SetTheme(prefs.ThemeLight)
	assert.Equal(t, prefs.ThemeLight, m.theme().Name)
}

func TestModel_PageNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.Equal(t, PageDashboard, m.page)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PageTables, m.page)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, PageSettings, m.page)
}

func TestModel_ViewFollowsLanguage(t *testing.T) {
	m, store, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Dashboard")

	store.SetLanguage(prefs.Indonesian)
	m = update(t, m, prefsChangedMsg{})
	view := m.View()
	assert.Contains(t, view, "Dasbor")
	assert.NotContains(t, view, "Dashboard")
}

func TestModel_ViewBeforeResize(t *testing.T) {
	store := prefs.NewStore()
	store.SetLanguage(prefs.Indonesian)
	m := New(Options{Prefs: store, HasDarkBackground: func() bool { return false }})
	defer m.Close()
	assert.Equal(t, "Memuat...", m.View())
}

func TestModel_HelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = update(t, m, runes("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = update(t, m, runes("x"))
	assert.False(t, m.showHelp)
}

func TestModel_SearchCapturesKeys(t *testing.T) {
	m, store, _ := newTestModel(t)
	m.page = PageTables

	m = update(t, m, runes("/"))
	require.True(t, m.showcase.searching())

	// Global keys are typed into the search box while it has focus.
	m = typeText(t, m, "LJane")
	assert.Equal(t, prefs.English, store.Language())
	assert.Equal(t, "LJane", m.showcase.state.Search)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showcase.searching())
	assert.Equal(t, "LJane", m.showcase.state.Search)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.showcase.state.Search)
}

func TestModel_MonthPrompt(t *testing.T) {
	m, _, loader := newTestModel(t)

	// Only the users page opens the prompt.
	m = update(t, m, runes("m"))
	assert.False(t, m.editingMonth)

	m.page = PageUsers
	m = update(t, m, runes("m"))
	require.True(t, m.editingMonth)
	assert.Equal(t, config.DefaultFilters().Month, m.monthInput.Value())

	m.monthInput.SetValue("2024-13")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.editingMonth)
	assert.Equal(t, "users.invalidMonth", m.monthErr)

	m.monthInput.SetValue("2024-05")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.False(t, m.editingMonth)
	assert.Empty(t, m.monthErr)
	assert.Equal(t, "2024-05", loader.Filters().Month)

	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, loadedMsg{}, msg)
	assert.Equal(t, []state.Section{state.SectionUsers}, loader.sections)
}

func TestModel_MonthPromptEscape(t *testing.T) {
	m, _, loader := newTestModel(t)
	m.page = PageUsers

	m = update(t, m, runes("m"))
	m.monthInput.SetValue("2030-01")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editingMonth)
	assert.Equal(t, config.DefaultFilters().Month, loader.Filters().Month)
}

func TestModel_Reload(t *testing.T) {
	m, _, loader := newTestModel(t)

	_, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, loader.loadAll)

	m.page = PageRoles
	_, cmd = m.Update(runes("r"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []state.Section{state.SectionRoles}, loader.sections)

	m.page = PageSettings
	_, cmd = m.Update(runes("r"))
	assert.Nil(t, cmd)
}

func TestModel_SnapshotFillsTables(t *testing.T) {
	m, _, _ := newTestModel(t)

	snapshots := &state.Store{}
	snapshots.Update(state.SectionRoles, nil, func(s *state.Snapshot) {
		s.Roles.Interactions = []analytics.RoleInteraction{
			{RoleA: "Admin", RoleB: "Editor", Weight: 4},
			{RoleA: "Editor", RoleB: "Viewer", Weight: 9},
		}
	})
	m = update(t, m, snapshotMsg(snapshots.Snapshot()))
	require.Len(t, m.interactions.records, 2)

	m.page = PageRoles
	view := m.View()
	assert.Contains(t, view, "Viewer")
	assert.True(t, strings.Index(view, "Viewer") < strings.Index(view, "Admin"),
		"interactions sort by weight, heaviest first")
}

func TestModel_SectionErrorShowsRetry(t *testing.T) {
	m, _, _ := newTestModel(t)

	snapshots := &state.Store{}
	snapshots.Update(state.SectionBPMN, errors.New("dial tcp: connect: connection refused"), nil)
	m = update(t, m, snapshotMsg(snapshots.Snapshot()))

	m.page = PageBPMN
	view := m.View()
	assert.Contains(t, view, "Retrying")
}

func TestModel_NarrowTerminalCollapsesSidebar(t *testing.T) {
	m, store, _ := newTestModel(t)
	assert.False(t, m.sidebarCollapsed())

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.True(t, m.sidebarCollapsed())
	assert.False(t, store.SidebarCollapsed(), "width must not change the preference")
}

func TestWaitForPrefsCmd(t *testing.T) {
	changed := make(chan struct{}, 1)
	changed <- struct{}{}
	assert.Equal(t, prefsChangedMsg{}, waitForPrefsCmd(context.Background(), changed)())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, waitForPrefsCmd(ctx, changed)())
}

func TestModel_SubscriptionWakesProgram(t *testing.T) {
	m, store, _ := newTestModel(t)
	store.SetTheme(prefs.ThemeDark)

	select {
	case <-m.prefsChanged:
	default:
		t.Fatal("preference change did not signal the program")
	}
}
