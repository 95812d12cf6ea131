package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/state"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

// Loader fetches dashboard sections into a state.Store. Sections load
// independently; a failed section is retried with backoff while the others
// stay usable.
type Loader struct {
	fetcher analytics.Fetcher
	store   *state.Store
	logger  *zap.Logger
	retry   time.Duration

	mu      sync.Mutex
	filters config.Filters

	kick chan struct{}
}

// NewLoader builds a Loader. A zero retry interval uses the default.
func NewLoader(fetcher analytics.Fetcher, store *state.Store, filters config.Filters, retry time.Duration, logger *zap.Logger) *Loader {
	if retry <= 0 {
		retry = defaultRetryInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
		retry:   retry,
		filters: filters,
		kick:    make(chan struct{}, 1),
	}
}

// Filters returns the current query parameters.
func (l *Loader) Filters() config.Filters {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters
}

// SetMonth changes the collaboration month. The caller reloads the users
// section afterwards.
func (l *Loader) SetMonth(month string) error {
	if !config.ValidMonth(month) {
		return fmt.Errorf("invalid month %q: want YYYY-MM", month)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters.Month = month
	return nil
}

// LoadAll loads every section concurrently and waits for all of them. The
// returned error joins the failures; each failure is also recorded in the
// store.
func (l *Loader) LoadAll(ctx context.Context) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, sec := range state.Sections {
		g.Go(func() error {
			if err := l.LoadSection(ctx, sec); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// commit records a finished load unless it was made for a users month that
// SetMonth has since replaced. Holding mu across the check and the store
// update keeps an older month from landing after a newer one.
func (l *Loader) commit(sec state.Section, f config.Filters, err error, apply func(*state.Snapshot)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if sec == state.SectionUsers && f.Month != l.filters.Month {
		return false
	}
	l.store.Update(sec, err, apply)
	return true
}

// LoadSection reloads one section. All requests of a section must succeed
// for its data to be replaced.
func (l *Loader) LoadSection(ctx context.Context, sec state.Section) error {
	l.store.MarkLoading(sec)
	filters := l.Filters()

	start := time.Now()
	apply, err := l.fetch(ctx, sec, filters)
	if !l.commit(sec, filters, err, apply) {
		l.logger.Debug("dropped stale section load",
			zap.Stringer("section", sec),
			zap.String("month", filters.Month))
		return nil
	}
	if err != nil {
		if ctx.Err() == nil {
			l.logger.Warn("section load failed",
				zap.Stringer("section", sec),
				zap.Error(err))
			select {
			case l.kick <- struct{}{}:
			default:
			}
		}
		return fmt.Errorf("load %s: %w", sec, err)
	}
	l.logger.Info("section loaded",
		zap.Stringer("section", sec),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (l *Loader) fetch(ctx context.Context, sec state.Section, f config.Filters) (func(*state.Snapshot), error) {
	g, ctx := errgroup.WithContext(ctx)

	switch sec {
	case state.SectionOrganization:
		var (
			evolution analytics.EvolutionMetric
			trend     []analytics.EvolutionMetric
			monthly   []analytics.MonthlyInteraction
		)
		g.Go(func() (err error) {
			evolution, err = l.fetcher.FetchEvolution(ctx, f.StartMonth, f.EndMonth)
			return err
		})
		g.Go(func() (err error) {
			trend, err = l.fetcher.FetchEvolutionTrend(ctx, f.StartMonth, f.EndMonth)
			return err
		})
		g.Go(func() (err error) {
			monthly, err = l.fetcher.FetchInteractionsTrend(ctx, f.Year)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return func(s *state.Snapshot) {
			s.Organization = state.Organization{Evolution: evolution, Trend: trend, Monthly: monthly}
		}, nil

	case state.SectionRoles:
		var (
			interactions, top []analytics.RoleInteraction
			all               []analytics.Entity
		)
		g.Go(func() (err error) {
			interactions, err = l.fetcher.FetchRoleInteractions(ctx)
			return err
		})
		g.Go(func() (err error) {
			top, err = l.fetcher.FetchTopRoleInteractions(ctx, f.TopLimit)
			return err
		})
		g.Go(func() (err error) {
			all, err = l.fetcher.FetchRoles(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return func(s *state.Snapshot) {
			s.Roles = state.Roles{Interactions: interactions, Top: top, All: all}
		}, nil

	case state.SectionUsers:
		var (
			collab []analytics.UserCollaboration
			all    []analytics.Entity
		)
		g.Go(func() (err error) {
			collab, err = l.fetcher.FetchUserCollaboration(ctx, f.Month)
			return err
		})
		g.Go(func() (err error) {
			all, err = l.fetcher.FetchUsers(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return func(s *state.Snapshot) {
			s.Users = state.Users{Month: f.Month, Collaboration: collab, All: all}
		}, nil

	case state.SectionPerformance:
		var (
			overtime  []analytics.OvertimeRisk
			durations []analytics.ProjectDuration
			average   float64
		)
		g.Go(func() (err error) {
			overtime, err = l.fetcher.FetchOvertimeRisk(ctx)
			return err
		})
		g.Go(func() (err error) {
			durations, err = l.fetcher.FetchProjectDurations(ctx)
			return err
		})
		g.Go(func() (err error) {
			average, err = l.fetcher.FetchAverageProjectDuration(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return func(s *state.Snapshot) {
			s.Performance = state.Performance{Overtime: overtime, Durations: durations, AverageDuration: average}
		}, nil

	case state.SectionAdvanced:
		var (
			handovers   []analytics.HandoverFlow
			utilization []analytics.UtilizationMetric
		)
		g.Go(func() (err error) {
			handovers, err = l.fetcher.FetchHandovers(ctx)
			return err
		})
		g.Go(func() (err error) {
			utilization, err = l.fetcher.FetchUtilization(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return func(s *state.Snapshot) {
			s.Advanced = state.Advanced{Handovers: handovers, Utilization: utilization}
		}, nil

	case state.SectionBPMN:
		data, err := l.fetcher.FetchBPMN(ctx)
		if err != nil {
			return nil, err
		}
		return func(s *state.Snapshot) { s.BPMN = data }, nil

	default:
		return nil, fmt.Errorf("unknown section %d", int(sec))
	}
}

// Run loads every section once and then retries failed sections until ctx
// is cancelled. Each failed section waits calculateBackoff of its failure
// count since its last attempt. Run blocks; start it on its own goroutine.
func (l *Loader) Run(ctx context.Context) {
	_ = l.LoadAll(ctx)

	for {
		wait, due := l.nextRetry(time.Now())

		var (
			t     *time.Timer
			timer <-chan time.Time
		)
		if wait >= 0 {
			t = time.NewTimer(wait)
			timer = t.C
		}

		fired := false
		select {
		case <-ctx.Done():
		case <-l.kick:
		case <-timer:
			fired = true
		}
		if t != nil {
			t.Stop()
		}
		if ctx.Err() != nil {
			return
		}
		if !fired {
			continue
		}

		for _, sec := range due {
			_ = l.LoadSection(ctx, sec)
		}
	}
}

// nextRetry returns how long until the earliest failed section is due, and
// the sections that are due at that moment. wait is negative when nothing
// has failed.
func (l *Loader) nextRetry(now time.Time) (time.Duration, []state.Section) {
	snap := l.store.Snapshot()
	wait := time.Duration(-1)
	var due []state.Section
	for _, sec := range state.Sections {
		st := snap.Section(sec)
		if st.Status != state.StatusError {
			continue
		}
		at := st.UpdatedAt.Add(calculateBackoff(st.ConsecutiveFailures-1, l.retry))
		d := max(at.Sub(now), 0)
		switch {
		case wait < 0 || d < wait:
			wait = d
			due = []state.Section{sec}
		case d == wait:
			due = append(due, sec)
		}
	}
	return wait, due
}
