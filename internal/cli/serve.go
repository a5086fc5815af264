package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/spacesync/internal/application/broadcast"
	"github.com/bnema/spacesync/internal/application/restore"
	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/infrastructure/bridge"
	"github.com/bnema/spacesync/internal/infrastructure/config"
	"github.com/bnema/spacesync/internal/infrastructure/host/memory"
	"github.com/bnema/spacesync/internal/infrastructure/lockfile"
	"github.com/bnema/spacesync/internal/logging"
)

// Serve runs the daemon until ctx is cancelled: it loads persisted state,
// mirrors host windows fed through the bridge, runs the periodic
// reconciliation, and streams updates to observers.
func (a *App) Serve(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "daemon")
	log := logging.FromContext(ctx)
	cfg := a.Config

	lockPath, err := config.GetLockFile()
	if err != nil {
		return err
	}
	lock, err := lockfile.Acquire(lockPath)
	if err != nil {
		return fmt.Errorf("another spacesync daemon is running: %w", err)
	}
	defer func() { _ = lock.Release() }()

	if _, err := a.DB.DB(ctx); err != nil {
		return err
	}

	host := memory.NewHost()
	defer host.Close()

	svc := broadcast.NewService(broadcast.WithNotifyTimeout(cfg.NotifyTimeout()))
	defer svc.Close()
	queue := broadcast.NewQueue(svc, broadcast.WithDebounce(cfg.Debounce()))
	queue.Start(ctx)
	defer func() {
		if err := queue.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("final flush failed")
		}
	}()

	registry := restore.NewRegistry(restore.WithTTL(cfg.RestoreTTL()))
	manager := state.NewManager(a.Spaces, host, host, registry, queue, state.WithConfig(cfg.ManagerConfig()))
	if err := manager.Load(ctx); err != nil {
		return err
	}
	manager.ListenTo(host)

	a.ConfigMgr.OnConfigChange(func(c *config.Config) {
		level := logging.SetLevel(c.Logging.Level)
		log.Info().Str("level", level.String()).Msg("log level updated")
	})
	if err := a.ConfigMgr.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return manager.Run(gctx) })
	if cfg.Server.Enabled {
		srv := bridge.NewServer(gctx, cfg.BridgeConfig(), manager, registry, host, svc)
		g.Go(func() error { return srv.ListenAndServe(gctx) })
	}

	log.Info().
		Str("db", a.DB.Path()).
		Bool("bridge", cfg.Server.Enabled).
		Str("lock", lock.Path()).
		Msg("spacesync daemon started")

	err = g.Wait()
	log.Info().Msg("spacesync daemon stopping")
	return err
}
