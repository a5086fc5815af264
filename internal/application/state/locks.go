package state

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/spacesync/internal/domain/entity"
)

// spaceLocks hands out per-space critical sections with a bounded wait.
// Keys are taken in sorted order. Window keys are decimal and archive keys
// start with a letter, so a window key always sorts before any archive key.
type spaceLocks struct {
	mu      sync.Mutex
	entries map[entity.SpaceID]*lockEntry
}

type lockEntry struct {
	sem  chan struct{}
	refs int
}

func newSpaceLocks() *spaceLocks {
	return &spaceLocks{entries: make(map[entity.SpaceID]*lockEntry)}
}

// acquire locks every id or none. The returned release func is safe to call
// once.
func (l *spaceLocks) acquire(ctx context.Context, timeout time.Duration, ids ...entity.SpaceID) (func(), error) {
	keys := slices.Clone(ids)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	start := time.Now()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	held := make([]entity.SpaceID, 0, len(keys))
	for _, id := range keys {
		e := l.ref(id)
		select {
		case e.sem <- struct{}{}:
			held = append(held, id)
		case <-deadline.C:
			l.unref(id)
			l.releaseAll(held)
			lockWaits.WithLabelValues("timeout").Observe(time.Since(start).Seconds())
			return nil, &entity.LockTimeoutError{SpaceID: id}
		case <-ctx.Done():
			l.unref(id)
			l.releaseAll(held)
			return nil, ctx.Err()
		}
	}
	lockWaits.WithLabelValues("acquired").Observe(time.Since(start).Seconds())

	var once sync.Once
	return func() { once.Do(func() { l.releaseAll(held) }) }, nil
}

func (l *spaceLocks) ref(id entity.SpaceID) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{sem: make(chan struct{}, 1)}
		l.entries[id] = e
	}
	e.refs++
	return e
}

func (l *spaceLocks) unref(id entity.SpaceID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[id]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(l.entries, id)
	}
}

func (l *spaceLocks) releaseAll(ids []entity.SpaceID) {
	for i := len(ids) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[ids[i]]
		l.mu.Unlock()
		<-e.sem
		l.unref(ids[i])
	}
}

// size reports how many keys currently have waiters or holders.
func (l *spaceLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
