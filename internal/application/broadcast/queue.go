package broadcast

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// DefaultDebounce is the coalescing window for non-bypassing updates.
const DefaultDebounce = 100 * time.Millisecond

// Queue debounces outgoing updates before handing them to a Broadcaster.
//
// Updates that bypass debounce (critical priority, or any name change) are
// dispatched synchronously from Enqueue. Everything else is held per
// coalesce key until the window opened by the first pending update elapses;
// only the latest update per key survives.
type Queue struct {
	out    port.Broadcaster
	window time.Duration

	// dispatchMu serializes every dispatch so observers see bypass updates in
	// submission order and never interleave with a flush.
	dispatchMu sync.Mutex

	mu      sync.Mutex
	pending map[string]entity.QueuedStateUpdate
	order   []string
	timer   *time.Timer
	ctx     context.Context
	closed  bool
	// renamed holds the newest dispatched rename per permanent id. Snapshots
	// built before a rename but enqueued after it are patched from here.
	renamed map[string]entity.SpaceUpdatedPayload
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithDebounce overrides the coalescing window.
func WithDebounce(d time.Duration) QueueOption {
	return func(q *Queue) {
		if d > 0 {
			q.window = d
		}
	}
}

// NewQueue creates a queue dispatching to out.
func NewQueue(out port.Broadcaster, opts ...QueueOption) *Queue {
	q := &Queue{
		out:     out,
		window:  DefaultDebounce,
		pending: make(map[string]entity.QueuedStateUpdate),
		renamed: make(map[string]entity.SpaceUpdatedPayload),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Start sets the context used by timer-driven flushes.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.ctx = ctx
	logging.FromContext(ctx).Debug().Dur("window", q.window).Msg("update queue started")
}

// Window returns the coalescing window.
func (q *Queue) Window() time.Duration {
	return q.window
}

// Enqueue accepts an update. Bypassing updates are dispatched before Enqueue
// returns and their dispatch error is returned; coalesced updates return nil.
func (q *Queue) Enqueue(ctx context.Context, update entity.QueuedStateUpdate) error {
	enqueuedTotal.WithLabelValues(string(update.Type), update.Priority.String()).Inc()

	if update.BypassesDebounce() {
		return q.dispatchNow(ctx, update)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	update.Payload = q.applyRenamesLocked(update.Payload)
	q.forgetDeletedLocked(update.Payload)
	key := update.CoalesceKey()
	if _, exists := q.pending[key]; exists {
		coalescedTotal.Inc()
	} else {
		q.order = append(q.order, key)
	}
	q.pending[key] = update
	pendingGauge.Set(float64(len(q.pending)))

	if q.timer == nil {
		q.timer = time.AfterFunc(q.window, q.onTimer)
	}
	return nil
}

func (q *Queue) dispatchNow(ctx context.Context, update entity.QueuedStateUpdate) error {
	q.dispatchMu.Lock()
	defer q.dispatchMu.Unlock()

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	update.Payload = q.applyRenamesLocked(update.Payload)
	if rename, ok := update.Payload.(entity.SpaceUpdatedPayload); ok && rename.Changes.Name != nil {
		if prev, seen := q.renamed[rename.PermanentID]; !seen || prev.Version < rename.Version {
			q.renamed[rename.PermanentID] = rename
		}
		q.patchPendingLocked(rename)
	}
	q.forgetDeletedLocked(update.Payload)
	q.mu.Unlock()

	dispatchedTotal.WithLabelValues("immediate").Inc()
	logging.FromContext(ctx).Debug().
		Str("update_id", update.ID).
		Str("type", string(update.Type)).
		Str("priority", update.Priority.String()).
		Msg("dispatching update immediately")
	return q.out.Broadcast(ctx, update)
}

// patchPendingLocked rewrites held snapshots that still carry a space's
// previous name so a later flush cannot revert a rename.
func (q *Queue) patchPendingLocked(rename entity.SpaceUpdatedPayload) {
	for key, pending := range q.pending {
		switch p := pending.Payload.(type) {
		case entity.SpacesReplacedPayload:
			pending.Payload = p.WithRename(rename)
		case entity.SpaceLifecyclePayload:
			pending.Payload = p.WithRename(rename)
		case entity.SpaceUpdatedPayload, entity.TabsChangedPayload:
			continue
		default:
			continue
		}
		q.pending[key] = pending
	}
}

// applyRenamesLocked brings a snapshot or lifecycle payload up to date with
// every rename already dispatched.
func (q *Queue) applyRenamesLocked(payload entity.UpdatePayload) entity.UpdatePayload {
	switch p := payload.(type) {
	case entity.SpacesReplacedPayload:
		for _, space := range slices.Concat(p.Spaces, p.Closed) {
			if rename, ok := q.renamed[space.PermanentID]; ok {
				p = p.WithRename(rename)
			}
		}
		return p
	case entity.SpaceLifecyclePayload:
		if rename, ok := q.renamed[p.Space.PermanentID]; ok {
			return p.WithRename(rename)
		}
		return p
	default:
		return payload
	}
}

func (q *Queue) forgetDeletedLocked(payload entity.UpdatePayload) {
	if gone, ok := payload.(entity.SpaceLifecyclePayload); ok && gone.Event == entity.UpdateSpaceDeleted {
		delete(q.renamed, gone.Space.PermanentID)
	}
}

func (q *Queue) onTimer() {
	q.mu.Lock()
	ctx := q.ctx
	q.mu.Unlock()

	if err := q.Flush(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("coalesced dispatch incomplete")
	}
}

// Flush dispatches every pending update now, in first-seen key order.
func (q *Queue) Flush(ctx context.Context) error {
	q.dispatchMu.Lock()
	defer q.dispatchMu.Unlock()

	q.mu.Lock()
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	batch := make([]entity.QueuedStateUpdate, 0, len(q.order))
	for _, key := range q.order {
		batch = append(batch, q.pending[key])
	}
	q.pending = make(map[string]entity.QueuedStateUpdate)
	q.order = nil
	pendingGauge.Set(0)
	q.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	logging.FromContext(ctx).Debug().Int("count", len(batch)).Msg("flushing coalesced updates")

	var errs []error
	for _, update := range batch {
		dispatchedTotal.WithLabelValues("coalesced").Inc()
		if err := q.out.Broadcast(ctx, update); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Pending returns the number of held updates.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close rejects further updates, then flushes the ones already held.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	return q.Flush(ctx)
}
