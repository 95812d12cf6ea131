package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/datasets"
	"github.com/five82/orgmine/internal/i18n"
	"github.com/five82/orgmine/internal/logging"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/state"
)

// Loader reloads dashboard sections on request.
type Loader interface {
	LoadAll(ctx context.Context) error
	LoadSection(ctx context.Context, sec state.Section) error
	SetMonth(month string) error
	Filters() config.Filters
}

// Options configures the UI.
type Options struct {
	Context context.Context
	Prefs   *prefs.Store
	State   *state.Store
	Loader  Loader
	Logger  *zap.Logger

	// PrefsPath is shown on the settings page; empty means preferences are
	// not persisted.
	PrefsPath string
	// HasDarkBackground reports the terminal background for the system
	// theme. Nil queries the terminal once at startup.
	HasDarkBackground func() bool
	// Tick is how often the snapshot is re-read. Zero uses DefaultUIInterval.
	Tick time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	prefs     *prefs.Store
	store     *state.Store
	loader    Loader
	logger    *zap.Logger
	keys      keyMap
	tick      time.Duration
	prefsPath string

	// systemDark is the terminal background, resolved once.
	systemDark bool

	// UI state
	page     Page
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Tables, keyed by the page they live on.
	tables       map[Page]pane
	showcase     *dataTable[datasets.ShowcaseUser]
	interactions *dataTable[analytics.RoleInteraction]
	collab       *dataTable[analytics.UserCollaboration]
	overtime     *dataTable[analytics.OvertimeRisk]
	handovers    *dataTable[analytics.HandoverFlow]

	bpmnView viewport.Model

	// Month prompt on the users page
	editingMonth bool
	monthInput   textinput.Model
	monthErr     string

	prefsChanged chan struct{}
	unsubscribe  func()
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Prefs
	if store == nil {
		store = prefs.NewStore()
	}
	snapshots := opts.State
	if snapshots == nil {
		snapshots = &state.Store{}
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}
	hasDark := opts.HasDarkBackground
	if hasDark == nil {
		hasDark = lipgloss.HasDarkBackground
	}

	showcase := newDataTable(datasets.ShowcaseTable, datasets.ShowcaseDefaultSort)
	showcase.placeholder = "tables.searchPlaceholder"
	showcase.statusKey = "status"
	showcase.setRecords(datasets.SampleUsers())

	interactions := newDataTable(datasets.RoleInteractionTable, "weight")
	interactions.state.SortDir = interactions.state.SortDir.Flip()
	collab := newDataTable(datasets.CollaborationTable, "weight")
	collab.state.SortDir = collab.state.SortDir.Flip()
	overtime := newDataTable(datasets.OvertimeTable, "overtime_count")
	overtime.state.SortDir = overtime.state.SortDir.Flip()
	handovers := newDataTable(datasets.HandoverTable, "avg_duration")
	handovers.state.SortDir = handovers.state.SortDir.Flip()

	monthInput := textinput.New()
	monthInput.CharLimit = 7
	monthInput.Placeholder = "YYYY-MM"

	// Buffered so a change made inside Update never blocks on the loop.
	changed := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func(prefs.Preferences) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	return Model{
		ctx:          ctx,
		prefs:        store,
		store:        snapshots,
		loader:       opts.Loader,
		logger:       logging.OrNop(opts.Logger),
		keys:         DefaultKeyMap(),
		tick:         tick,
		prefsPath:    opts.PrefsPath,
		systemDark:   hasDark(),
		page:         PageDashboard,
		showcase:     showcase,
		interactions: interactions,
		collab:       collab,
		overtime:     overtime,
		handovers:    handovers,
		tables: map[Page]pane{
			PageTables:      showcase,
			PageRoles:       interactions,
			PageUsers:       collab,
			PagePerformance: overtime,
			PageAdvanced:    handovers,
		},
		bpmnView:     viewport.New(0, 0),
		monthInput:   monthInput,
		prefsChanged: changed,
		unsubscribe:  unsubscribe,
	}
}

// Close stops listening for preference changes.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.tick),
		fetchSnapshotCmd(m.store),
		waitForPrefsCmd(m.ctx, m.prefsChanged),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.syncBPMN()
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.tick))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.logger.Debug("reload failed", zap.Error(msg.err))
		}
		return m, fetchSnapshotCmd(m.store)

	case prefsChangedMsg:
		m.syncBPMN()
		return m, waitForPrefsCmd(m.ctx, m.prefsChanged)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return i18n.New(m.prefs.Language()).T("common.loading")
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// theme resolves the current theme preference.
func (m Model) theme() Theme {
	return ResolveTheme(m.prefs.Theme(), m.systemDark)
}

func (m Model) translator() i18n.Translator {
	return i18n.New(m.prefs.Language())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.editingMonth {
		return m.handleMonthKey(msg)
	}

	tag := m.translator().Tag()
	active := m.tables[m.page]
	if active != nil && active.searching() {
		cmd, _ := active.handleKey(msg, m.keys, tag)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.prefs.ToggleSidebarCollapsed()
		return m, nil

	case key.Matches(msg, m.keys.Language):
		m.prefs.SetLanguage(m.prefs.Language().Next())
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.prefs.SetTheme(m.prefs.Theme().Next())
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.page = m.page.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.page = m.page.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.Month) && m.page == PageUsers && m.loader != nil:
		m.editingMonth = true
		m.monthErr = ""
		m.monthInput.SetValue(m.loader.Filters().Month)
		m.monthInput.CursorEnd()
		return m, m.monthInput.Focus()
	}

	if m.page == PageBPMN {
		if key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown) {
			var cmd tea.Cmd
			m.bpmnView, cmd = m.bpmnView.Update(msg)
			return m, cmd
		}
	}

	if active != nil {
		cmd, _ := active.handleKey(msg, m.keys, tag)
		return m, cmd
	}
	return m, nil
}

// handleMonthKey edits the collaboration month. Enter applies it and reloads
// the users section; esc cancels.
func (m Model) handleMonthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.editingMonth = false
		m.monthInput.Blur()
		m.monthErr = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if err := m.loader.SetMonth(m.monthInput.Value()); err != nil {
			m.monthErr = "users.invalidMonth"
			return m, nil
		}
		m.editingMonth = false
		m.monthInput.Blur()
		m.monthErr = ""
		return m, loadSectionCmd(m.ctx, m.loader, state.SectionUsers)
	}

	var cmd tea.Cmd
	m.monthInput, cmd = m.monthInput.Update(msg)
	return m, cmd
}

// applySnapshot hands fresh section data to the tables.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.lastUpdated = time.Now()
	m.interactions.setRecords(snap.Roles.Interactions)
	m.collab.setRecords(snap.Users.Collaboration)
	m.overtime.setRecords(snap.Performance.Overtime)
	m.handovers.setRecords(snap.Advanced.Handovers)
	m.syncBPMN()
}

// reloadCmd reloads the sections behind the current page.
func (m Model) reloadCmd() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	if m.page == PageDashboard {
		loader, ctx := m.loader, m.ctx
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(ctx, ReloadTimeout)
			defer cancel()
			return loadedMsg{err: loader.LoadAll(ctx)}
		}
	}
	sec, ok := m.page.Section()
	if !ok {
		return nil
	}
	return loadSectionCmd(m.ctx, m.loader, sec)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type loadedMsg struct{ err error }

type prefsChangedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadSectionCmd(ctx context.Context, loader Loader, sec state.Section) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ReloadTimeout)
		defer cancel()
		return loadedMsg{err: loader.LoadSection(ctx, sec)}
	}
}

func waitForPrefsCmd(ctx context.Context, changed <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			return prefsChangedMsg{}
		}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
