// Package cli wires configuration, the tab provider and the use cases for
// the tabgrouper commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/bnema/tabgrouper/internal/api"
	"github.com/bnema/tabgrouper/internal/application/port"
	"github.com/bnema/tabgrouper/internal/application/usecase"
	"github.com/bnema/tabgrouper/internal/cli/styles"
	"github.com/bnema/tabgrouper/internal/infrastructure/config"
	"github.com/bnema/tabgrouper/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabgrouper/internal/infrastructure/tabprovider/cdp"
	"github.com/bnema/tabgrouper/internal/infrastructure/tabprovider/memory"
	"github.com/bnema/tabgrouper/internal/logging"
)

// Options override configuration values from command-line flags.
type Options struct {
	Provider    string
	FixturePath string
	CDPURL      string
	LogLevel    string
}

// App holds CLI dependencies.
type App struct {
	Config   *config.Config
	Manager  *config.Manager
	Theme    *styles.Theme
	Logger   zerolog.Logger
	Provider port.TabProvider

	Snapshots *usecase.BuildSnapshotUseCase
	Reorder   *usecase.ReorderTabsUseCase
	Drops     *usecase.DropQueue
	Groups    *usecase.SyncGroupMetadataUseCase
	Presets   *usecase.ManagePresetsUseCase

	lazyDB     *sqlite.LazyDB
	closers    []func() error
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds the application graph.
// Nothing talks to the browser or opens the database until first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return NewAppWithConfig(mgr, mgr.Get(), opts)
}

// NewAppWithConfig builds the application graph from an already loaded
// configuration. mgr may be nil.
func NewAppWithConfig(mgr *config.Manager, cfg *config.Config, opts Options) (*App, error) {
	applyOptions(cfg, opts)

	// Loggers stay at trace; the global level filters so a config reload
	// can change verbosity without rebuilding them.
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: zerolog.TraceLevel, Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: true,
		},
	)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		Logger:     logger,
		ctx:        ctx,
		logCleanup: logCleanup,
	}

	provider, err := app.newProvider()
	if err != nil {
		logCleanup()
		return nil, err
	}
	app.Provider = provider

	app.lazyDB = sqlite.NewLazyDB(cfg.Database.Path)
	app.closers = append(app.closers, app.lazyDB.Close)

	app.Snapshots = usecase.NewBuildSnapshotUseCase(provider)
	app.Reorder = usecase.NewReorderTabsUseCase(provider, app.Snapshots)
	app.Drops = usecase.NewDropQueue(app.Reorder)
	app.Groups = usecase.NewSyncGroupMetadataUseCase(provider)
	app.Presets = usecase.NewManagePresetsUseCase(sqlite.NewLazyGroupPresetRepository(app.lazyDB), app.Groups)

	logger.Debug().
		Str("provider", string(cfg.Provider.Kind)).
		Str("db_path", cfg.Database.Path).
		Msg("app initialized")
	return app, nil
}

func applyOptions(cfg *config.Config, opts Options) {
	if opts.Provider != "" {
		cfg.Provider.Kind = config.ProviderKind(opts.Provider)
	}
	if opts.FixturePath != "" {
		cfg.Provider.FixturePath = opts.FixturePath
		if opts.Provider == "" {
			cfg.Provider.Kind = config.ProviderMemory
		}
	}
	if opts.CDPURL != "" {
		cfg.Provider.CDPURL = opts.CDPURL
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
}

func (a *App) newProvider() (port.TabProvider, error) {
	cfg := a.Config.Provider
	switch cfg.Kind {
	case config.ProviderCDP:
		p := cdp.New(cdp.Config{
			URL:         cfg.CDPURL,
			ExtensionID: cfg.ExtensionID,
			EvalTimeout: cfg.EvalTimeout,
		}, a.Logger)
		a.closers = append(a.closers, p.Close)
		return p, nil

	case config.ProviderMemory:
		fixture, err := memory.LoadFixture(cfg.FixturePath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		p := memory.New(fixture)
		// The fixture file is the memory provider's persistent state.
		a.closers = append(a.closers, func() error {
			if len(p.Calls()) == 0 {
				return nil
			}
			return p.SaveFixture(cfg.FixturePath)
		})
		return p, nil

	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Kind)
	}
}

// APIDeps returns the use cases served by the HTTP API.
func (a *App) APIDeps() api.Deps {
	return api.Deps{
		Snapshots:    a.Snapshots,
		Reorder:      a.Reorder,
		Drops:        a.Drops,
		Groups:       a.Groups,
		Presets:      a.Presets,
		DefaultTitle: a.Config.Groups.DefaultTitle,
		DefaultColor: a.Config.Groups.DefaultColor,
	}
}

// SetLogLevel changes the process-wide log level.
func (a *App) SetLogLevel(level string) {
	zerolog.SetGlobalLevel(logging.ParseLevel(level))
}

// Close releases all resources. Closers run in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
