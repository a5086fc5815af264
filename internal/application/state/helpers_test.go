package state_test

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/spacesync/internal/application/port"
	portmocks "github.com/bnema/spacesync/internal/application/port/mocks"
	"github.com/bnema/spacesync/internal/application/restore"
	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/domain/repository"
	"github.com/bnema/spacesync/internal/logging"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func seqIDs() entity.IDGenerator {
	var n atomic.Int64
	return func() string { return fmt.Sprintf("id-%d", n.Add(1)) }
}

// publisher records every update handed to it.
type publisher struct {
	mu      sync.Mutex
	updates []entity.QueuedStateUpdate
	err     error
}

func (p *publisher) Enqueue(_ context.Context, u entity.QueuedStateUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, u)
	return p.err
}

func (p *publisher) ofType(t entity.UpdateType) []entity.QueuedStateUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []entity.QueuedStateUpdate
	for _, u := range p.updates {
		if u.Type == t {
			out = append(out, u)
		}
	}
	return out
}

// memRepo is an in-memory SpaceRepository with compare-and-swap writes.
type memRepo struct {
	mu     sync.Mutex
	active map[entity.SpaceID]entity.Space
	closed map[entity.SpaceID]entity.Space
	tabs   map[entity.SpaceID][]entity.TabRecord
	meta   map[string]string

	saveErr error
}

var _ repository.SpaceRepository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		active: make(map[entity.SpaceID]entity.Space),
		closed: make(map[entity.SpaceID]entity.Space),
		tabs:   make(map[entity.SpaceID][]entity.TabRecord),
		meta:   make(map[string]string),
	}
}

func (r *memRepo) LoadSpaces(context.Context) (map[entity.SpaceID]entity.Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.active), nil
}

func (r *memRepo) SaveSpaces(_ context.Context, spaces map[entity.SpaceID]entity.Space) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = maps.Clone(spaces)
	return nil
}

func (r *memRepo) LoadClosedSpaces(context.Context) (map[entity.SpaceID]entity.Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.closed), nil
}

func (r *memRepo) SaveClosedSpaces(_ context.Context, spaces map[entity.SpaceID]entity.Space) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = maps.Clone(spaces)
	return nil
}

func (r *memRepo) getLocked(id entity.SpaceID) (entity.Space, bool) {
	if s, ok := r.active[id]; ok {
		return s, true
	}
	s, ok := r.closed[id]
	return s, ok
}

func (r *memRepo) GetSpace(_ context.Context, id entity.SpaceID) (*entity.Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.getLocked(id)
	if !ok {
		return nil, nil
	}
	s = s.Clone()
	return &s, nil
}

func (r *memRepo) checkLocked(id entity.SpaceID, expected int64) error {
	if expected <= 0 {
		return nil
	}
	s, ok := r.getLocked(id)
	if !ok || s.Version != expected {
		return &entity.VersionConflictError{SpaceID: id, Expected: expected, Current: s.Version}
	}
	return nil
}

func (r *memRepo) putLocked(s entity.Space) {
	delete(r.active, s.ID)
	delete(r.closed, s.ID)
	if s.IsActive {
		r.active[s.ID] = s.Clone()
	} else {
		r.closed[s.ID] = s.Clone()
	}
}

func (r *memRepo) SaveSpace(_ context.Context, space entity.Space, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if err := r.checkLocked(space.ID, expectedVersion); err != nil {
		return err
	}
	r.putLocked(space)
	return nil
}

func (r *memRepo) ReplaceSpace(_ context.Context, oldID entity.SpaceID, space entity.Space, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if err := r.checkLocked(oldID, expectedVersion); err != nil {
		return err
	}
	delete(r.active, oldID)
	delete(r.closed, oldID)
	r.putLocked(space)
	if tabs, ok := r.tabs[oldID]; ok && oldID != space.ID {
		delete(r.tabs, oldID)
		for i := range tabs {
			tabs[i].SpaceID = space.ID
		}
		r.tabs[space.ID] = tabs
	}
	return nil
}

func (r *memRepo) DeleteSpace(_ context.Context, id entity.SpaceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, id)
	delete(r.closed, id)
	delete(r.tabs, id)
	return nil
}

func (r *memRepo) LoadTabs(_ context.Context, id entity.SpaceID) ([]entity.TabRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.tabs[id]), nil
}

func (r *memRepo) SaveTabs(_ context.Context, id entity.SpaceID, tabs []entity.TabRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tabs[id] = slices.Clone(tabs)
	return nil
}

func (r *memRepo) DeleteTabs(_ context.Context, id entity.SpaceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tabs, id)
	return nil
}

func (r *memRepo) GetMetadata(_ context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.meta[key]
	return v, ok, nil
}

func (r *memRepo) SetMetadata(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meta[key] = value
	return nil
}

func (r *memRepo) Export(context.Context) ([]byte, error) { return nil, nil }
func (r *memRepo) Import(context.Context, []byte) error   { return nil }

func (r *memRepo) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.active)
	clear(r.closed)
	clear(r.tabs)
	clear(r.meta)
	return nil
}

func (r *memRepo) stored(id entity.SpaceID) (entity.Space, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(id)
}

type fixture struct {
	repo     repository.SpaceRepository
	windows  *portmocks.MockWindowManager
	tabs     *portmocks.MockTabManager
	registry *restore.Registry
	pub      *publisher
	clock    *clock
	manager  *state.Manager
}

func newFixture(t *testing.T, repo repository.SpaceRepository, cfg ...state.Config) *fixture {
	t.Helper()
	f := &fixture{
		repo:    repo,
		windows: portmocks.NewMockWindowManager(t),
		tabs:    portmocks.NewMockTabManager(t),
		pub:     &publisher{},
		clock:   &clock{now: baseTime},
	}
	f.registry = restore.NewRegistry(restore.WithClock(f.clock.Now))

	c := state.DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	f.manager = state.NewManager(repo, f.windows, f.tabs, f.registry, f.pub,
		state.WithClock(f.clock.Now),
		state.WithIDGenerator(seqIDs()),
		state.WithConfig(c),
	)
	return f
}

func window(id entity.WindowID, typ entity.WindowType, urls ...string) entity.Window {
	w := entity.Window{ID: id, Type: typ}
	for i, u := range urls {
		w.Tabs = append(w.Tabs, entity.Tab{ID: entity.TabID(int(id)*100 + i), WindowID: id, Index: i, URL: u})
	}
	return w
}

var _ port.UpdatePublisher = (*publisher)(nil)
