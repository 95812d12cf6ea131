package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/state"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFetcher struct {
	mu        sync.Mutex
	gotMonth  string
	gotLimit  int
	bpmnFails int // remaining FetchBPMN failures
	bpmnCalls int
	handover  error

	// onCollab runs at the start of FetchUserCollaboration.
	onCollab func(month string)
}

var errDown = errors.New("backend down")

func (f *fakeFetcher) FetchEvolution(context.Context, string, string) (analytics.EvolutionMetric, error) {
	return analytics.EvolutionMetric{Phase: "2019", ActiveUsers: 12, TopRoles: []string{"Admin"}}, nil
}

func (f *fakeFetcher) FetchEvolutionTrend(context.Context, string, string) ([]analytics.EvolutionMetric, error) {
	return []analytics.EvolutionMetric{{Phase: "2019-01"}, {Phase: "2019-02"}}, nil
}

func (f *fakeFetcher) FetchInteractionsTrend(context.Context, string) ([]analytics.MonthlyInteraction, error) {
	return []analytics.MonthlyInteraction{{Month: "2019-01", TotalInteractions: 4}}, nil
}

func (f *fakeFetcher) FetchOvertimeRisk(context.Context) ([]analytics.OvertimeRisk, error) {
	return []analytics.OvertimeRisk{{Name: "Sari", Role: "Analyst", OvertimeCount: 3}}, nil
}

func (f *fakeFetcher) FetchProjectDurations(context.Context) ([]analytics.ProjectDuration, error) {
	return []analytics.ProjectDuration{{CaseID: "c1", DurationDays: 4.5}}, nil
}

func (f *fakeFetcher) FetchAverageProjectDuration(context.Context) (float64, error) {
	return 4.5, nil
}

func (f *fakeFetcher) FetchHandovers(context.Context) ([]analytics.HandoverFlow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handover != nil {
		return nil, f.handover
	}
	return []analytics.HandoverFlow{{SourceRole: "A", TargetRole: "B", AvgDuration: 2}}, nil
}

func (f *fakeFetcher) FetchUtilization(context.Context) ([]analytics.UtilizationMetric, error) {
	return nil, nil
}

func (f *fakeFetcher) FetchRoleInteractions(context.Context) ([]analytics.RoleInteraction, error) {
	return []analytics.RoleInteraction{{RoleA: "A", RoleB: "B", Weight: 3}}, nil
}

func (f *fakeFetcher) FetchTopRoleInteractions(_ context.Context, limit int) ([]analytics.RoleInteraction, error) {
	f.mu.Lock()
	f.gotLimit = limit
	f.mu.Unlock()
	return nil, nil
}

func (f *fakeFetcher) FetchRoles(context.Context) ([]analytics.Entity, error) {
	return []analytics.Entity{{Name: "Admin"}}, nil
}

func (f *fakeFetcher) FetchUsers(context.Context) ([]analytics.Entity, error) {
	return []analytics.Entity{{Name: "Sari"}}, nil
}

func (f *fakeFetcher) FetchUserCollaboration(_ context.Context, month string) ([]analytics.UserCollaboration, error) {
	if f.onCollab != nil {
		f.onCollab(month)
	}
	f.mu.Lock()
	f.gotMonth = month
	f.mu.Unlock()
	return []analytics.UserCollaboration{{UserA: "Sari", UserB: "Budi", Weight: 1, Month: month}}, nil
}

func (f *fakeFetcher) FetchBPMN(context.Context) (analytics.BPMNData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bpmnCalls++
	if f.bpmnFails > 0 {
		f.bpmnFails--
		return analytics.BPMNData{}, errDown
	}
	return analytics.BPMNData{Nodes: []analytics.BPMNNode{{ID: "start", Type: "startEvent"}}}, nil
}

func (f *fakeFetcher) setHandoverErr(err error) {
	f.mu.Lock()
	f.handover = err
	f.mu.Unlock()
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bpmnCalls
}

var _ analytics.Fetcher = (*fakeFetcher)(nil)

func newTestLoader(t *testing.T, f *fakeFetcher) (*Loader, *state.Store) {
	t.Helper()
	store := &state.Store{}
	return NewLoader(f, store, config.DefaultFilters(), 10*time.Millisecond, zaptest.NewLogger(t)), store
}

func TestLoader_LoadAllFillsEverySection(t *testing.T) {
	f := &fakeFetcher{}
	l, store := newTestLoader(t, f)

	require.NoError(t, l.LoadAll(context.Background()))

	snap := store.Snapshot()
	for _, sec := range state.Sections {
		assert.True(t, snap.Ready(sec), "section %s", sec)
	}
	assert.Equal(t, 12, snap.Organization.Evolution.ActiveUsers)
	assert.Len(t, snap.Organization.Trend, 2)
	assert.Equal(t, 4.5, snap.Performance.AverageDuration)
	assert.Equal(t, "2024-04", snap.Users.Month)
	assert.Len(t, snap.BPMN.Nodes, 1)
	assert.Equal(t, 10, f.gotLimit)
}

func TestLoader_FailedSectionIsIsolated(t *testing.T) {
	f := &fakeFetcher{}
	f.setHandoverErr(errDown)
	l, store := newTestLoader(t, f)

	err := l.LoadAll(context.Background())
	require.ErrorIs(t, err, errDown)
	assert.Contains(t, err.Error(), "load advanced")

	snap := store.Snapshot()
	adv := snap.Section(state.SectionAdvanced)
	assert.Equal(t, state.StatusError, adv.Status)
	assert.Equal(t, 1, adv.ConsecutiveFailures)
	assert.ErrorIs(t, adv.Err, errDown)
	assert.True(t, snap.Ready(state.SectionRoles))
	assert.True(t, snap.Ready(state.SectionBPMN))
}

func TestLoader_FailureKeepsPreviousData(t *testing.T) {
	f := &fakeFetcher{}
	l, store := newTestLoader(t, f)
	ctx := context.Background()

	require.NoError(t, l.LoadSection(ctx, state.SectionAdvanced))
	f.setHandoverErr(errDown)
	require.Error(t, l.LoadSection(ctx, state.SectionAdvanced))

	snap := store.Snapshot()
	assert.Len(t, snap.Advanced.Handovers, 1)
	st := snap.Section(state.SectionAdvanced)
	assert.Equal(t, state.StatusError, st.Status)
	assert.True(t, st.HasData)
}

func TestLoader_SetMonth(t *testing.T) {
	f := &fakeFetcher{}
	l, store := newTestLoader(t, f)

	require.Error(t, l.SetMonth("2024-13"))
	assert.Equal(t, "2024-04", l.Filters().Month)

	require.NoError(t, l.SetMonth("2023-11"))
	require.NoError(t, l.LoadSection(context.Background(), state.SectionUsers))
	assert.Equal(t, "2023-11", f.gotMonth)
	assert.Equal(t, "2023-11", store.Snapshot().Users.Month)
}

func TestLoader_StaleMonthLoadIsDropped(t *testing.T) {
	f := &fakeFetcher{}
	l, store := newTestLoader(t, f)
	ctx := context.Background()

	// While the 2024-04 request is in flight the month changes and the newer
	// load finishes first.
	f.onCollab = func(month string) {
		if month != "2024-04" {
			return
		}
		assert.NoError(t, l.SetMonth("2024-05"))
		assert.NoError(t, l.LoadSection(ctx, state.SectionUsers))
	}

	require.NoError(t, l.LoadSection(ctx, state.SectionUsers))

	snap := store.Snapshot()
	assert.Equal(t, "2024-05", snap.Users.Month)
	require.Len(t, snap.Users.Collaboration, 1)
	assert.Equal(t, "2024-05", snap.Users.Collaboration[0].Month)
	assert.True(t, snap.Ready(state.SectionUsers))
}

func TestLoader_RunRetriesFailedSection(t *testing.T) {
	f := &fakeFetcher{bpmnFails: 2}
	l, store := newTestLoader(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return store.Snapshot().Ready(state.SectionBPMN)
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, f.calls())
	assert.Zero(t, store.Snapshot().Section(state.SectionBPMN).ConsecutiveFailures)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestLoader_RunStopsWhenNothingFailed(t *testing.T) {
	l, store := newTestLoader(t, &fakeFetcher{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return store.Snapshot().Ready(state.SectionOrganization)
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestLoader_NextRetry(t *testing.T) {
	l, store := newTestLoader(t, &fakeFetcher{})

	wait, due := l.nextRetry(time.Now())
	assert.Negative(t, wait)
	assert.Empty(t, due)

	store.Update(state.SectionBPMN, errDown, nil)
	store.Update(state.SectionBPMN, errDown, nil)
	store.Update(state.SectionRoles, errDown, nil)

	wait, due = l.nextRetry(time.Now())
	assert.LessOrEqual(t, wait, 10*time.Millisecond)
	assert.Equal(t, []state.Section{state.SectionRoles}, due)

	wait, due = l.nextRetry(time.Now().Add(time.Minute))
	assert.Zero(t, wait)
	assert.Equal(t, []state.Section{state.SectionRoles, state.SectionBPMN}, due)
}

func TestPersistPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	store := prefs.NewStore()
	unbind := PersistPreferences(store, path, zaptest.NewLogger(t))

	store.SetTheme(prefs.ThemeDark)
	store.SetLanguage(prefs.Indonesian)
	got := prefs.Load(path)
	assert.Equal(t, prefs.ThemeDark, got.Theme)
	assert.Equal(t, prefs.Indonesian, got.Language)

	unbind()
	store.ToggleSidebarCollapsed()
	assert.False(t, prefs.Load(path).SidebarCollapsed)
}

func TestNewSession_LoadsSavedPreferences(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.PrefsPath = filepath.Join(dir, "prefs.toml")
	require.NoError(t, prefs.Save(cfg.PrefsPath, prefs.Preferences{
		Language: prefs.Indonesian, Theme: prefs.ThemeLight, SidebarCollapsed: true,
	}))

	s, err := NewSession(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, prefs.Indonesian, s.Prefs.Language())
	assert.Equal(t, prefs.ThemeLight, s.Prefs.Theme())
	assert.True(t, s.Prefs.SidebarCollapsed())

	s.Prefs.SetTheme(prefs.ThemeDark)
	assert.Equal(t, prefs.ThemeDark, prefs.Load(cfg.PrefsPath).Theme)
}

func TestNewSession_PersistenceDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	cfg.PersistPreferences = false

	s, err := NewSession(cfg, nil)
	require.NoError(t, err)
	defer s.Close()

	s.Prefs.SetTheme(prefs.ThemeDark)
	assert.Equal(t, prefs.ThemeSystem, prefs.Load(cfg.PrefsPath).Theme)
}
