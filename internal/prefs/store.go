package prefs

import (
	"sync"
)

// Listener receives the preferences after every change.
type Listener func(Preferences)

// Store is the single source of truth for Preferences. Mutations are
// synchronous: a read after a mutation returns the new value from any
// goroutine. Listeners run after the state lock is released, in subscription
// order, and only when a mutation changed something. Notifications are
// delivered in mutation order; a listener must not mutate the store.
type Store struct {
	// notifyMu serializes mutate calls so notifications follow mutation order.
	notifyMu  sync.Mutex
	mu        sync.RWMutex
	prefs     Preferences
	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewStore returns a store holding Defaults.
func NewStore() *Store {
	return &Store{prefs: Defaults(), listeners: make(map[int]Listener)}
}

// Get returns the current preferences.
func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Language returns the current language.
func (s *Store) Language() Language { return s.Get().Language }

// Theme returns the current theme.
func (s *Store) Theme() Theme { return s.Get().Theme }

// SidebarCollapsed reports whether the sidebar is collapsed.
func (s *Store) SidebarCollapsed() bool { return s.Get().SidebarCollapsed }

// SetLanguage switches the interface language. Unsupported values are ignored.
func (s *Store) SetLanguage(lang Language) {
	if !lang.Valid() {
		return
	}
	s.mutate(func(p *Preferences) { p.Language = lang })
}

// SetTheme switches the color theme. Unsupported values are ignored.
func (s *Store) SetTheme(theme Theme) {
	if !theme.Valid() {
		return
	}
	s.mutate(func(p *Preferences) { p.Theme = theme })
}

// ToggleSidebarCollapsed flips the sidebar state.
func (s *Store) ToggleSidebarCollapsed() {
	s.mutate(func(p *Preferences) { p.SidebarCollapsed = !p.SidebarCollapsed })
}

// SetSidebarCollapsed sets the sidebar state.
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mutate(func(p *Preferences) { p.SidebarCollapsed = collapsed })
}

// Apply sets every field of p through the individual setters, so invalid
// fields are skipped and listeners fire at most once per changed field.
func (s *Store) Apply(p Preferences) {
	s.SetLanguage(p.Language)
	s.SetTheme(p.Theme)
	s.SetSidebarCollapsed(p.SidebarCollapsed)
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listeners == nil {
		s.listeners = make(map[int]Listener)
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Store) mutate(fn func(*Preferences)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	before := s.prefs
	fn(&s.prefs)
	after := s.prefs
	var listeners []Listener
	if after != before {
		listeners = make([]Listener, 0, len(s.order))
		for _, id := range s.order {
			listeners = append(listeners, s.listeners[id])
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(after)
	}
}
