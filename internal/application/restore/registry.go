// Package restore tracks outstanding restore intents and matches them to
// freshly created host windows.
package restore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// Registry owns the restore intents. Pending intents are kept in request
// order; attached intents are keyed by the window that claimed them.
type Registry struct {
	mu       sync.Mutex
	pending  []*entity.RestoreSnapshot
	attached map[entity.WindowID]*entity.RestoreSnapshot
	ttl      time.Duration
	now      func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithTTL overrides the default staleness threshold.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		attached: make(map[entity.WindowID]*entity.RestoreSnapshot),
		ttl:      entity.DefaultRestoreTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TTL returns the staleness threshold used by RunCleanup.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// Register records a restore intent for an archived space. Registering the
// same archived space twice returns the intent already outstanding.
func (r *Registry) Register(ctx context.Context, archived entity.Space, expectedType entity.WindowType) (entity.RestoreSnapshot, error) {
	if archived.IsActive || !archived.ID.IsArchived() {
		return entity.RestoreSnapshot{}, fmt.Errorf("%w: space %s is not archived", entity.ErrInvalidArgument, archived.ID)
	}
	if expectedType != "" && !expectedType.Valid() {
		return entity.RestoreSnapshot{}, fmt.Errorf("%w: unknown window type %q", entity.ErrInvalidArgument, expectedType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reapLocked(ctx, r.ttl)
	if existing := r.findLocked(archived.ID); existing != nil {
		return existing.Clone(), nil
	}

	snap := entity.NewRestoreSnapshot(archived, expectedType, r.now())
	r.pending = append(r.pending, &snap)
	intentsRegistered.Inc()
	pendingIntents.Set(float64(len(r.pending)))

	logging.FromContext(ctx).Debug().
		Str("closed_space_id", string(snap.ClosedSpaceID)).
		Str("expected_type", string(snap.ExpectedType)).
		Int("url_count", len(snap.URLs)).
		Msg("restore intent registered")

	return snap.Clone(), nil
}

// ClaimPendingWindow returns the oldest pending intent matching the window
// and moves it to window_attached. No match leaves every intent pending.
func (r *Registry) ClaimPendingWindow(ctx context.Context, window entity.Window) (entity.RestoreSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Expired intents never match, whether or not a sweep has run yet.
	r.reapLocked(ctx, r.ttl)

	log := logging.FromContext(ctx)
	reportsTabs := len(window.URLs()) > 0

	for i, snap := range r.pending {
		if !snap.Matches(window) {
			if reportsTabs && snap.ExpectedType == window.Type {
				log.Debug().
					Str("closed_space_id", string(snap.ClosedSpaceID)).
					Int64("window_id", int64(window.ID)).
					Msg("skipping restore intent with no url overlap")
			}
			continue
		}

		r.pending = append(r.pending[:i], r.pending[i+1:]...)
		id := window.ID
		snap.WindowID = &id
		snap.Status = entity.RestoreWindowAttached
		r.attached[id] = snap

		claimsTotal.WithLabelValues("matched").Inc()
		pendingIntents.Set(float64(len(r.pending)))
		log.Info().
			Str("closed_space_id", string(snap.ClosedSpaceID)).
			Int64("window_id", int64(id)).
			Bool("had_tabs", reportsTabs).
			Msg("window claimed by restore intent")
		return snap.Clone(), true
	}

	claimsTotal.WithLabelValues("miss").Inc()
	return entity.RestoreSnapshot{}, false
}

// Finalize confirms the restore bound to windowID and forgets it.
func (r *Registry) Finalize(ctx context.Context, windowID entity.WindowID) (entity.RestoreSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, ok := r.attached[windowID]
	if !ok {
		return entity.RestoreSnapshot{}, false
	}
	delete(r.attached, windowID)
	snap.Status = entity.RestoreFinalized
	intentsResolved.WithLabelValues(string(entity.RestoreFinalized)).Inc()

	logging.FromContext(ctx).Debug().
		Str("closed_space_id", string(snap.ClosedSpaceID)).
		Int64("window_id", int64(windowID)).
		Msg("restore finalized")
	return snap.Clone(), true
}

// Fail drops the intent for closedSpaceID whatever its status.
func (r *Registry) Fail(ctx context.Context, closedSpaceID entity.SpaceID, reason string) (entity.RestoreSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.removeLocked(closedSpaceID)
	if snap == nil {
		return entity.RestoreSnapshot{}, false
	}
	snap.Status = entity.RestoreFailed
	intentsResolved.WithLabelValues(string(entity.RestoreFailed)).Inc()

	logging.FromContext(ctx).Warn().
		Str("closed_space_id", string(closedSpaceID)).
		Str("reason", reason).
		Msg("restore failed")
	return snap.Clone(), true
}

// Cancel drops the intent for closedSpaceID. It reports whether one existed.
func (r *Registry) Cancel(ctx context.Context, closedSpaceID entity.SpaceID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.removeLocked(closedSpaceID) == nil {
		return false
	}
	intentsResolved.WithLabelValues("cancelled").Inc()
	logging.FromContext(ctx).Debug().Str("closed_space_id", string(closedSpaceID)).Msg("restore intent cancelled")
	return true
}

// CleanupStale removes every intent older than maxAge regardless of status.
// Returns the number removed.
func (r *Registry) CleanupStale(ctx context.Context, maxAge time.Duration) int {
	if maxAge <= 0 {
		maxAge = r.ttl
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reapLocked(ctx, maxAge)
}

// reapLocked drops intents older than maxAge. Callers hold r.mu.
func (r *Registry) reapLocked(ctx context.Context, maxAge time.Duration) int {
	log := logging.FromContext(ctx)
	now := r.now()
	removed := 0

	kept := r.pending[:0]
	for _, snap := range r.pending {
		if snap.Age(now) > maxAge {
			removed++
			log.Info().
				Str("closed_space_id", string(snap.ClosedSpaceID)).
				Str("status", string(snap.Status)).
				Dur("age", snap.Age(now)).
				Msg("dropping stale restore intent")
			continue
		}
		kept = append(kept, snap)
	}
	for i := len(kept); i < len(r.pending); i++ {
		r.pending[i] = nil
	}
	r.pending = kept

	for windowID, snap := range r.attached {
		if snap.Age(now) > maxAge {
			removed++
			delete(r.attached, windowID)
			log.Info().
				Str("closed_space_id", string(snap.ClosedSpaceID)).
				Str("status", string(snap.Status)).
				Int64("window_id", int64(windowID)).
				Dur("age", snap.Age(now)).
				Msg("dropping stale restore intent")
		}
	}

	if removed > 0 {
		intentsResolved.WithLabelValues("stale").Add(float64(removed))
	}
	pendingIntents.Set(float64(len(r.pending)))
	return removed
}

// RunCleanup sweeps stale intents every interval until ctx is done.
func (r *Registry) RunCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.ttl / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.CleanupStale(ctx, r.ttl)
		}
	}
}

// Pending returns copies of the unexpired pending intents, oldest first.
func (r *Registry) Pending() []entity.RestoreSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	out := make([]entity.RestoreSnapshot, 0, len(r.pending))
	for _, snap := range r.pending {
		if r.expired(snap, now) {
			continue
		}
		out = append(out, snap.Clone())
	}
	return out
}

func (r *Registry) expired(snap *entity.RestoreSnapshot, now time.Time) bool {
	return snap.Age(now) > r.ttl
}

// Get returns the intent for closedSpaceID in any live status.
func (r *Registry) Get(closedSpaceID entity.SpaceID) (entity.RestoreSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.findLocked(closedSpaceID)
	if snap == nil || r.expired(snap, r.now()) {
		return entity.RestoreSnapshot{}, false
	}
	return snap.Clone(), true
}

// AttachedTo returns the intent claimed by windowID, if any.
func (r *Registry) AttachedTo(windowID entity.WindowID) (entity.RestoreSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, ok := r.attached[windowID]
	if !ok {
		return entity.RestoreSnapshot{}, false
	}
	return snap.Clone(), true
}

func (r *Registry) findLocked(closedSpaceID entity.SpaceID) *entity.RestoreSnapshot {
	for _, snap := range r.pending {
		if snap.ClosedSpaceID == closedSpaceID {
			return snap
		}
	}
	for _, snap := range r.attached {
		if snap.ClosedSpaceID == closedSpaceID {
			return snap
		}
	}
	return nil
}

func (r *Registry) removeLocked(closedSpaceID entity.SpaceID) *entity.RestoreSnapshot {
	for i, snap := range r.pending {
		if snap.ClosedSpaceID == closedSpaceID {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			pendingIntents.Set(float64(len(r.pending)))
			return snap
		}
	}
	for windowID, snap := range r.attached {
		if snap.ClosedSpaceID == closedSpaceID {
			delete(r.attached, windowID)
			return snap
		}
	}
	return nil
}
