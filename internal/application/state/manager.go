// Package state owns the canonical in-memory space maps and orchestrates
// every mutation: lock, mutate, persist, then notify.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/application/restore"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/domain/repository"
	"github.com/bnema/spacesync/internal/logging"
)

// Config tunes the manager's timeouts and timers.
type Config struct {
	LockTimeout       time.Duration
	IOTimeout         time.Duration
	SyncInterval      time.Duration
	CleanupInterval   time.Duration
	DefaultWindowType entity.WindowType
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return Config{
		LockTimeout:       5 * time.Second,
		IOTimeout:         10 * time.Second,
		SyncInterval:      30 * time.Second,
		CleanupInterval:   10 * time.Second,
		DefaultWindowType: entity.WindowTypeNormal,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LockTimeout <= 0 {
		c.LockTimeout = d.LockTimeout
	}
	if c.IOTimeout <= 0 {
		c.IOTimeout = d.IOTimeout
	}
	if c.SyncInterval <= 0 {
		c.SyncInterval = d.SyncInterval
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = d.CleanupInterval
	}
	if !c.DefaultWindowType.Valid() {
		c.DefaultWindowType = d.DefaultWindowType
	}
	return c
}

// Manager is the only writer of the space maps.
type Manager struct {
	repo     repository.SpaceRepository
	windows  port.WindowManager
	tabs     port.TabManager
	registry *restore.Registry
	updates  port.UpdatePublisher
	cfg      Config

	locks     *spaceLocks
	syncGroup singleflight.Group
	now       func() time.Time
	newID     entity.IDGenerator

	mu     sync.RWMutex
	spaces map[entity.SpaceID]entity.Space
	closed map[entity.SpaceID]entity.Space
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator overrides permanent id, update id, and tab record id generation.
func WithIDGenerator(gen entity.IDGenerator) Option {
	return func(m *Manager) { m.newID = gen }
}

// WithConfig overrides the default tuning.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.cfg = cfg.withDefaults() }
}

// NewManager wires the orchestrator. updates may be nil, in which case
// mutations are persisted without notifying anyone.
func NewManager(
	repo repository.SpaceRepository,
	windows port.WindowManager,
	tabs port.TabManager,
	registry *restore.Registry,
	updates port.UpdatePublisher,
	opts ...Option,
) *Manager {
	m := &Manager{
		repo:     repo,
		windows:  windows,
		tabs:     tabs,
		registry: registry,
		updates:  updates,
		cfg:      DefaultConfig(),
		locks:    newSpaceLocks(),
		now:      time.Now,
		newID:    uuid.NewString,
		spaces:   make(map[entity.SpaceID]entity.Space),
		closed:   make(map[entity.SpaceID]entity.Space),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the in-memory maps with the persisted ones.
func (m *Manager) Load(ctx context.Context) error {
	log := logging.FromContext(ctx)

	ioCtx, cancel := m.persistContext(ctx)
	defer cancel()

	active, err := m.repo.LoadSpaces(ioCtx)
	if err != nil {
		return &entity.StorageError{Op: "load spaces", Err: err}
	}
	closed, err := m.repo.LoadClosedSpaces(ioCtx)
	if err != nil {
		return &entity.StorageError{Op: "load closed spaces", Err: err}
	}

	m.mu.Lock()
	m.spaces = make(map[entity.SpaceID]entity.Space, len(active))
	for id, s := range active {
		m.spaces[id] = s.Clone()
	}
	m.closed = make(map[entity.SpaceID]entity.Space, len(closed))
	for id, s := range closed {
		m.closed[id] = s.Clone()
	}
	m.updateGaugesLocked()
	m.mu.Unlock()

	log.Info().Int("active", len(active)).Int("closed", len(closed)).Msg("state loaded")
	m.publish(ctx, m.snapshotPayload(), entity.PriorityNormal)
	return nil
}

// Config returns the effective tuning.
func (m *Manager) Config() Config {
	return m.cfg
}

// Registry returns the restore registry used by the manager.
func (m *Manager) Registry() *restore.Registry {
	return m.registry
}

// GetAllSpaces returns copies of the active spaces, oldest first.
func (m *Manager) GetAllSpaces() []entity.Space {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedCopies(m.spaces)
}

// GetClosedSpaces returns copies of the archived spaces, oldest first.
func (m *Manager) GetClosedSpaces() []entity.Space {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedCopies(m.closed)
}

// GetSpaceByID looks a space up in both maps.
func (m *Manager) GetSpaceByID(id entity.SpaceID) (entity.Space, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.lookupLocked(id)
	if !ok {
		return entity.Space{}, false
	}
	return s.Clone(), true
}

// HasSpace reports whether id names an active or archived space.
func (m *Manager) HasSpace(id entity.SpaceID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.lookupLocked(id)
	return ok
}

// SpaceForWindow returns the active space bound to a window.
func (m *Manager) SpaceForWindow(windowID entity.WindowID) (entity.Space, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.spaces[entity.SpaceIDForWindow(windowID)]
	if !ok {
		return entity.Space{}, false
	}
	return s.Clone(), true
}

// Run drives the periodic reconciliation and restore cleanup until ctx is
// done.
func (m *Manager) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m.registry.RunCleanup(gctx, m.cfg.CleanupInterval)
		return nil
	})

	g.Go(func() error {
		if !m.waitHostReady(gctx) {
			return nil
		}
		ticker := time.NewTicker(m.cfg.SyncInterval)
		defer ticker.Stop()
		for {
			if _, err := m.SynchronizeWindowsAndSpaces(gctx); err != nil && gctx.Err() == nil {
				log.Warn().Err(err).Msg("periodic sync failed")
			}
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	log.Info().
		Dur("sync_interval", m.cfg.SyncInterval).
		Dur("cleanup_interval", m.cfg.CleanupInterval).
		Msg("state manager running")
	return g.Wait()
}

// waitHostReady blocks until a host that reports readiness has a complete
// window list. It returns false if ctx ends first.
func (m *Manager) waitHostReady(ctx context.Context) bool {
	r, ok := m.windows.(port.HostReadiness)
	if !ok {
		return true
	}
	select {
	case <-r.Ready():
		return true
	default:
	}
	logging.FromContext(ctx).Info().Msg("waiting for host window list before reconciling")
	select {
	case <-r.Ready():
		return true
	case <-ctx.Done():
		return false
	}
}

// hostReady reports whether the host window list can be trusted to archive
// spaces whose window is missing.
func (m *Manager) hostReady() bool {
	r, ok := m.windows.(port.HostReadiness)
	if !ok {
		return true
	}
	select {
	case <-r.Ready():
		return true
	default:
		return false
	}
}

func (m *Manager) lookupLocked(id entity.SpaceID) (entity.Space, bool) {
	if s, ok := m.spaces[id]; ok {
		return s, true
	}
	s, ok := m.closed[id]
	return s, ok
}

// put stores s in the map matching IsActive, removing prevID from both maps.
func (m *Manager) put(prevID entity.SpaceID, s entity.Space) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prevID != "" {
		delete(m.spaces, prevID)
		delete(m.closed, prevID)
	}
	if s.IsActive {
		m.spaces[s.ID] = s.Clone()
	} else {
		m.closed[s.ID] = s.Clone()
	}
	m.updateGaugesLocked()
}

func (m *Manager) remove(id entity.SpaceID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.spaces, id)
	delete(m.closed, id)
	m.updateGaugesLocked()
}

func (m *Manager) updateGaugesLocked() {
	spacesGauge.WithLabelValues("active").Set(float64(len(m.spaces)))
	spacesGauge.WithLabelValues("closed").Set(float64(len(m.closed)))
}

func (m *Manager) current(id entity.SpaceID) (entity.Space, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.lookupLocked(id)
	return s.Clone(), ok
}

// lock takes the per-space critical sections for ids.
func (m *Manager) lock(ctx context.Context, ids ...entity.SpaceID) (func(), error) {
	release, err := m.locks.acquire(ctx, m.cfg.LockTimeout, ids...)
	if err != nil {
		return nil, fmt.Errorf("lock space: %w", err)
	}
	return release, nil
}

// persistContext bounds a storage call. A started persist is not cancelled
// with the caller.
func (m *Manager) persistContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), m.cfg.IOTimeout)
}

// hostContext bounds a host window or tab call.
func (m *Manager) hostContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.cfg.IOTimeout)
}

// storageErr classifies a repository error. Version conflicts pass through.
func storageErr(op string, err error) error {
	var conflict *entity.VersionConflictError
	if errors.As(err, &conflict) {
		return conflict
	}
	return &entity.StorageError{Op: op, Err: err}
}

// publish hands an update to the queue. Failures are logged only: the
// mutation is already persisted.
func (m *Manager) publish(ctx context.Context, payload entity.UpdatePayload, priority entity.UpdatePriority) {
	if m.updates == nil {
		return
	}
	update := entity.NewUpdate(m.newID(), payload, priority, m.now())
	if err := m.updates.Enqueue(ctx, update); err != nil {
		publishFailures.Inc()
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("update_id", update.ID).
			Str("type", string(update.Type)).
			Msg("state update persisted but not broadcast")
	}
}

func (m *Manager) snapshotPayload() entity.SpacesReplacedPayload {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return entity.SpacesReplacedPayload{
		Spaces: sortedCopies(m.spaces),
		Closed: sortedCopies(m.closed),
	}
}

func sortedCopies(in map[entity.SpaceID]entity.Space) []entity.Space {
	out := make([]entity.Space, 0, len(in))
	for _, s := range in {
		out = append(out, s.Clone())
	}
	entity.SortSpaces(out)
	return out
}

// errorKind maps an error to a short label for metrics and logs.
func errorKind(err error) string {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, entity.ErrVersionConflict):
		return "version_conflict"
	case errors.Is(err, entity.ErrStorageFailure):
		return "storage_failure"
	case errors.Is(err, entity.ErrLockTimeout):
		return "lock_timeout"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
