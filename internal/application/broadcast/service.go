// Package broadcast coalesces outgoing state-change notifications and fans
// them out to subscribed observers.
package broadcast

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// DefaultNotifyTimeout bounds a single observer notification.
const DefaultNotifyTimeout = 2 * time.Second

// ErrClosed is returned once the service or queue has been closed.
var ErrClosed = errors.New("broadcast closed")

// SubscriptionID identifies one registered observer.
type SubscriptionID uint64

// Service delivers updates to every registered observer.
type Service struct {
	mu            sync.RWMutex
	observers     map[SubscriptionID]port.Observer
	nextID        SubscriptionID
	notifyTimeout time.Duration
	closed        bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithNotifyTimeout overrides the per-observer timeout.
func WithNotifyTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

// NewService creates a service with no observers.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		observers:     make(map[SubscriptionID]port.Observer),
		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers an observer and returns its subscription id.
func (s *Service) Subscribe(observer port.Observer) SubscriptionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.observers[s.nextID] = observer
	observersGauge.Set(float64(len(s.observers)))
	return s.nextID
}

// SubscribeChan registers a buffered channel observer. Updates that do not
// fit in the buffer are dropped for that subscriber. The returned cancel
// func unsubscribes and closes the channel.
func (s *Service) SubscribeChan(buffer int) (<-chan entity.QueuedStateUpdate, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	obs := &chanObserver{ch: make(chan entity.QueuedStateUpdate, buffer)}
	id := s.Subscribe(obs)

	var once sync.Once
	return obs.ch, func() {
		once.Do(func() {
			s.Unsubscribe(id)
			obs.close()
		})
	}
}

// Unsubscribe removes an observer. Unknown ids are ignored.
func (s *Service) Unsubscribe(id SubscriptionID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.observers, id)
	observersGauge.Set(float64(len(s.observers)))
}

// ObserverCount returns the number of registered observers.
func (s *Service) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Broadcast notifies every observer in subscription order. Each observer gets
// its own timeout; failures are joined and do not stop the fan-out.
func (s *Service) Broadcast(ctx context.Context, update entity.QueuedStateUpdate) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	ids := make([]SubscriptionID, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	targets := make([]port.Observer, 0, len(ids))
	for _, id := range ids {
		targets = append(targets, s.observers[id])
	}
	s.mu.RUnlock()

	var errs []error
	for i, obs := range targets {
		if err := s.notify(ctx, obs, update); err != nil {
			broadcastErrors.Inc()
			errs = append(errs, fmt.Errorf("observer %d: %w", ids[i], err))
		}
	}
	deliveredTotal.WithLabelValues(string(update.Type)).Inc()

	if err := errors.Join(errs...); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("update_id", update.ID).
			Str("type", string(update.Type)).
			Msg("some observers were not notified")
		return err
	}
	return nil
}

func (s *Service) notify(ctx context.Context, obs port.Observer, update entity.QueuedStateUpdate) error {
	nctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	return obs.Notify(nctx, update)
}

// Close drops every observer and rejects further broadcasts.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, obs := range s.observers {
		if c, ok := obs.(*chanObserver); ok {
			c.close()
		}
		delete(s.observers, id)
	}
	s.closed = true
	observersGauge.Set(0)
}

type chanObserver struct {
	mu     sync.Mutex
	ch     chan entity.QueuedStateUpdate
	closed bool
}

func (c *chanObserver) Notify(_ context.Context, update entity.QueuedStateUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	select {
	case c.ch <- update:
	default:
		droppedTotal.Inc()
	}
	return nil
}

func (c *chanObserver) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.ch)
	}
}
