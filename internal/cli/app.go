// Package cli holds the dependencies shared by the spacesync commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/spacesync/internal/application/restore"
	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/cli/styles"
	"github.com/bnema/spacesync/internal/domain/build"
	"github.com/bnema/spacesync/internal/domain/repository"
	"github.com/bnema/spacesync/internal/infrastructure/bridge"
	"github.com/bnema/spacesync/internal/infrastructure/config"
	"github.com/bnema/spacesync/internal/infrastructure/host/memory"
	"github.com/bnema/spacesync/internal/infrastructure/lockfile"
	"github.com/bnema/spacesync/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/spacesync/internal/logging"
)

// App holds CLI dependencies. The database is opened on first use so
// commands that never touch it stay fast.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	DB     *sqlite.LazyDB
	Spaces repository.SpaceRepository

	ctx     context.Context
	logFile io.Closer
}

// Options are the root command's persistent flags.
type Options struct {
	ConfigFile string
	LogLevel   string
}

// NewApp loads configuration and builds the logger and lazy storage.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().Str("db_path", cfg.Database.Path).Str("config", mgr.GetConfigFile()).Msg("app initialized")

	return &App{
		Config:    cfg,
		ConfigMgr: mgr,
		Theme:     styles.NewTheme(),
		DB:        db,
		Spaces:    sqlite.NewLazySpaceRepository(db),
		ctx:       ctx,
		logFile:   logFile,
	}, nil
}

// newLogger writes to stderr, and also to a rotating file when enabled.
func newLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	lc := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	}
	if !cfg.Logging.EnableFileLog {
		return logging.NewDynamic(lc), nil, nil
	}

	rot, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        cfg.Logging.LogDir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	lc.Output = io.MultiWriter(os.Stderr, rot)
	return logging.NewDynamic(lc), rot, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}

// Connect decides where a mutation runs. When a daemon holds the instance
// lock it returns a bridge client for it. Otherwise it takes the lock
// itself and returns it; the caller works offline and releases it.
func (a *App) Connect() (*bridge.Client, *lockfile.Lock, error) {
	path, err := config.GetLockFile()
	if err != nil {
		return nil, nil, err
	}
	lock, err := lockfile.Acquire(path)
	switch {
	case errors.Is(err, lockfile.ErrLocked):
		if !a.Config.Server.Enabled {
			return nil, nil, fmt.Errorf("daemon is running with the bridge disabled, stop it first: %w", err)
		}
		return bridge.NewClient(a.Config.Server.Addr), nil, nil
	case err != nil:
		return nil, nil, err
	}
	return nil, lock, nil
}

// OfflineManager builds a state manager over the database with no live
// windows, for mutations while the daemon is stopped. Callers must hold
// the instance lock.
func (a *App) OfflineManager(ctx context.Context) (*state.Manager, func(), error) {
	host := memory.NewHost()
	registry := restore.NewRegistry(restore.WithTTL(a.Config.RestoreTTL()))

	m := state.NewManager(a.Spaces, host, host, registry, nil, state.WithConfig(a.Config.ManagerConfig()))
	cleanup := host.Close
	if err := m.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return m, cleanup, nil
}
