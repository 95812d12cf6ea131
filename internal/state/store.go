package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/five82/orgmine/internal/analytics"
)

// Section is an independently loaded part of the dashboard.
type Section int

const (
	SectionOrganization Section = iota
	SectionRoles
	SectionUsers
	SectionPerformance
	SectionAdvanced
	SectionBPMN
)

// Sections lists every section in load order.
var Sections = []Section{
	SectionOrganization,
	SectionRoles,
	SectionUsers,
	SectionPerformance,
	SectionAdvanced,
	SectionBPMN,
}

func (s Section) String() string {
	switch s {
	case SectionOrganization:
		return "organization"
	case SectionRoles:
		return "roles"
	case SectionUsers:
		return "users"
	case SectionPerformance:
		return "performance"
	case SectionAdvanced:
		return "advanced"
	case SectionBPMN:
		return "bpmn"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// Status is the load state of a section.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "loading"
	}
}

// SectionState tracks the most recent load attempt of a section.
type SectionState struct {
	Status              Status
	Err                 error
	UpdatedAt           time.Time
	HasData             bool
	ConsecutiveFailures int // Number of consecutive failed loads
}

// IsOffline returns true when the API has been unreachable for multiple attempts.
func (s SectionState) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Organization holds the organization evolution page data.
type Organization struct {
	Evolution analytics.EvolutionMetric
	Trend     []analytics.EvolutionMetric
	Monthly   []analytics.MonthlyInteraction
}

// Roles holds the role interaction page data.
type Roles struct {
	Interactions []analytics.RoleInteraction
	Top          []analytics.RoleInteraction
	All          []analytics.Entity
}

// Users holds the user collaboration page data.
type Users struct {
	Month         string
	Collaboration []analytics.UserCollaboration
	All           []analytics.Entity
}

// Performance holds the overtime and project duration page data.
type Performance struct {
	Overtime        []analytics.OvertimeRisk
	Durations       []analytics.ProjectDuration
	AverageDuration float64
}

// Advanced holds the handover and utilization page data.
type Advanced struct {
	Handovers   []analytics.HandoverFlow
	Utilization []analytics.UtilizationMetric
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Organization Organization
	Roles        Roles
	Users        Users
	Performance  Performance
	Advanced     Advanced
	BPMN         analytics.BPMNData

	Sections map[Section]SectionState
}

// Section returns the load state of sec. Sections never loaded are loading.
func (s Snapshot) Section(sec Section) SectionState {
	return s.Sections[sec]
}

// Ready reports whether sec holds data from a successful load.
func (s Snapshot) Ready(sec Section) bool {
	return s.Sections[sec].Status == StatusReady
}

// LastError returns the error of the most recently failed section, if any.
func (s Snapshot) LastError() error {
	var (
		latest time.Time
		err    error
	)
	for _, st := range s.Sections {
		if st.Status == StatusError && st.Err != nil && !st.UpdatedAt.Before(latest) {
			latest = st.UpdatedAt
			err = st.Err
		}
	}
	return err
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// MarkLoading flags sec as loading while keeping its previous data.
func (s *Store) MarkLoading(sec Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.snapshot.Sections[sec]
	st.Status = StatusLoading
	st.Err = nil
	s.setSection(sec, st)
}

// Update records the outcome of loading sec. When err is non-nil the previous
// data is kept but the error is recorded for visibility; otherwise apply
// writes the new data into the snapshot.
func (s *Store) Update(sec Section, err error, apply func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.snapshot.Sections[sec]
	st.UpdatedAt = time.Now()
	if err != nil {
		st.Status = StatusError
		st.Err = err
		st.ConsecutiveFailures++
		s.setSection(sec, st)
		return
	}

	if apply != nil {
		apply(&s.snapshot)
	}
	st.Status = StatusReady
	st.Err = nil
	st.HasData = true
	st.ConsecutiveFailures = 0
	s.setSection(sec, st)
}

func (s *Store) setSection(sec Section, st SectionState) {
	if s.snapshot.Sections == nil {
		s.snapshot.Sections = make(map[Section]SectionState, len(Sections))
	}
	s.snapshot.Sections[sec] = st
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.snapshot
	snap := Snapshot{
		Organization: Organization{
			Evolution: cloneEvolution(src.Organization.Evolution),
			Trend:     cloneTrend(src.Organization.Trend),
			Monthly:   slices.Clone(src.Organization.Monthly),
		},
		Roles: Roles{
			Interactions: slices.Clone(src.Roles.Interactions),
			Top:          slices.Clone(src.Roles.Top),
			All:          slices.Clone(src.Roles.All),
		},
		Users: Users{
			Month:         src.Users.Month,
			Collaboration: slices.Clone(src.Users.Collaboration),
			All:           slices.Clone(src.Users.All),
		},
		Performance: Performance{
			Overtime:        slices.Clone(src.Performance.Overtime),
			Durations:       slices.Clone(src.Performance.Durations),
			AverageDuration: src.Performance.AverageDuration,
		},
		Advanced: Advanced{
			Handovers:   slices.Clone(src.Advanced.Handovers),
			Utilization: slices.Clone(src.Advanced.Utilization),
		},
		BPMN: analytics.BPMNData{
			Nodes: slices.Clone(src.BPMN.Nodes),
			Edges: slices.Clone(src.BPMN.Edges),
		},
		Sections: make(map[Section]SectionState, len(src.Sections)),
	}
	for sec, st := range src.Sections {
		if st.Err != nil {
			st.Err = fmt.Errorf("%w", st.Err)
		}
		snap.Sections[sec] = st
	}
	return snap
}

func cloneEvolution(m analytics.EvolutionMetric) analytics.EvolutionMetric {
	m.TopRoles = slices.Clone(m.TopRoles)
	return m
}

func cloneTrend(items []analytics.EvolutionMetric) []analytics.EvolutionMetric {
	if items == nil {
		return nil
	}
	dup := make([]analytics.EvolutionMetric, len(items))
	for i, m := range items {
		dup[i] = cloneEvolution(m)
	}
	return dup
}
