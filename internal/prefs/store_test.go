package prefs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Defaults(t *testing.T) {
	s := NewStore()
	assert.Equal(t, English, s.Language())
	assert.Equal(t, ThemeSystem, s.Theme())
	assert.False(t, s.SidebarCollapsed())
}

func TestStore_SetThemeAndToggleSidebar(t *testing.T) {
	s := NewStore()
	require.Equal(t, ThemeSystem, s.Theme())

	s.SetTheme(ThemeDark)
	assert.Equal(t, ThemeDark, s.Theme())

	original := s.SidebarCollapsed()
	s.ToggleSidebarCollapsed()
	assert.NotEqual(t, original, s.SidebarCollapsed())
	s.ToggleSidebarCollapsed()
	assert.Equal(t, original, s.SidebarCollapsed())
}

func TestStore_IgnoresInvalidValues(t *testing.T) {
	s := NewStore()
	var calls int
	s.Subscribe(func(Preferences) { calls++ })

	s.SetLanguage("fr")
	s.SetTheme("sepia")
	assert.Equal(t, Defaults(), s.Get())
	assert.Zero(t, calls)
}

func TestStore_SettersAreIdempotent(t *testing.T) {
	s := NewStore()
	var calls int
	s.Subscribe(func(Preferences) { calls++ })

	s.SetSidebarCollapsed(true)
	s.SetSidebarCollapsed(true)
	s.SetLanguage(Indonesian)
	s.SetLanguage(Indonesian)

	assert.True(t, s.SidebarCollapsed())
	assert.Equal(t, Indonesian, s.Language())
	assert.Equal(t, 2, calls, "only changes notify")
}

func TestStore_SubscribeReceivesNewValue(t *testing.T) {
	s := NewStore()
	var got []Preferences
	unsubscribe := s.Subscribe(func(p Preferences) { got = append(got, p) })

	s.SetTheme(ThemeLight)
	s.ToggleSidebarCollapsed()
	unsubscribe()
	unsubscribe()
	s.SetLanguage(Indonesian)

	require.Len(t, got, 2)
	assert.Equal(t, ThemeLight, got[0].Theme)
	assert.False(t, got[0].SidebarCollapsed)
	assert.True(t, got[1].SidebarCollapsed)
}

func TestStore_ListenersRunInSubscriptionOrder(t *testing.T) {
	s := NewStore()
	var order []string
	s.Subscribe(func(Preferences) { order = append(order, "a") })
	s.Subscribe(func(Preferences) { order = append(order, "b") })

	s.SetTheme(ThemeDark)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	s := NewStore()
	var seen Theme
	s.Subscribe(func(Preferences) { seen = s.Theme() })

	s.SetTheme(ThemeDark)
	assert.Equal(t, ThemeDark, seen)
}

func TestStore_Apply(t *testing.T) {
	s := NewStore()
	s.Apply(Preferences{Language: Indonesian, Theme: "bogus", SidebarCollapsed: true})

	assert.Equal(t, Preferences{Language: Indonesian, Theme: ThemeSystem, SidebarCollapsed: true}, s.Get())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ToggleSidebarCollapsed()
			s.SetTheme(Themes[i%len(Themes)])
		}()
		go func() {
			defer wg.Done()
			_ = s.Get()
		}()
	}
	wg.Wait()

	// 50 toggles return to the starting state.
	assert.False(t, s.SidebarCollapsed())
}

func TestStore_NotificationsFollowMutationOrder(t *testing.T) {
	s := NewStore()
	var (
		mu   sync.Mutex
		last Preferences
	)
	s.Subscribe(func(p Preferences) {
		mu.Lock()
		last = p
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetTheme(Themes[i%len(Themes)])
			s.ToggleSidebarCollapsed()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, s.Get(), last, "the last notification carries the final state")
}
