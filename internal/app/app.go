package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/config"
	"github.com/five82/orgmine/internal/logging"
	"github.com/five82/orgmine/internal/prefs"
	"github.com/five82/orgmine/internal/state"
	"github.com/five82/orgmine/internal/ui"
)

// Options configure the orgmine application.
type Options struct {
	ConfigPath string
	Verbose    bool
}

// Session holds the wired components shared by the TUI and its loader.
type Session struct {
	Config config.Config
	Logger *zap.Logger
	Client *analytics.Client
	Prefs  *prefs.Store
	State  *state.Store
	Loader *Loader

	unbind func()
}

// NewSession builds every component from cfg. Preferences are loaded from
// cfg.PrefsPath and, when persistence is enabled, saved on every change.
func NewSession(cfg config.Config, logger *zap.Logger) (*Session, error) {
	logger = logging.OrNop(logger)

	client, err := analytics.NewClient(analytics.Options{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger.Named("analytics"),
	})
	if err != nil {
		return nil, fmt.Errorf("init analytics client: %w", err)
	}

	store := prefs.NewStore()
	store.Apply(prefs.Load(cfg.PrefsPath))

	unbind := func() {}
	if cfg.PersistPreferences {
		unbind = PersistPreferences(store, cfg.PrefsPath, logger)
	}

	snapshots := &state.Store{}
	return &Session{
		Config: cfg,
		Logger: logger,
		Client: client,
		Prefs:  store,
		State:  snapshots,
		Loader: NewLoader(client, snapshots, cfg.Filters, cfg.RetryInterval, logger.Named("loader")),
		unbind: unbind,
	}, nil
}

// Close detaches the preference writer.
func (s *Session) Close() {
	s.unbind()
}

// PersistPreferences saves the store to path after every change. Save
// failures are logged; the in-memory value stays authoritative. The returned
// func stops saving.
func PersistPreferences(store *prefs.Store, path string, logger *zap.Logger) func() {
	logger = logging.OrNop(logger)
	return store.Subscribe(func(p prefs.Preferences) {
		if err := prefs.Save(path, p); err != nil {
			logger.Warn("save preferences failed", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Debug("preferences saved",
			zap.String("language", string(p.Language)),
			zap.String("theme", string(p.Theme)),
			zap.Bool("sidebar_collapsed", p.SidebarCollapsed))
	})
}

// Run boots the orgmine TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: opts.Verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	session, err := NewSession(cfg, logger)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		session.Loader.Run(ctx)
	}()

	logger.Info("orgmine starting",
		zap.String("api", session.Client.BaseURL()),
		zap.String("prefs", cfg.PrefsPath))

	uiOpts := ui.Options{
		Context: ctx,
		Prefs:   session.Prefs,
		State:   session.State,
		Loader:  session.Loader,
		Logger:  logger.Named("ui"),
	}
	if cfg.PersistPreferences {
		uiOpts.PrefsPath = cfg.PrefsPath
	}
	err = ui.Run(uiOpts)
	cancel()
	<-done
	return err
}
