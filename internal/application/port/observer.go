package port

import (
	"context"

	"github.com/bnema/spacesync/internal/domain/entity"
)

// Observer receives finalized state-change notifications.
// Implementations must not block past ctx.
type Observer interface {
	Notify(ctx context.Context, update entity.QueuedStateUpdate) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, update entity.QueuedStateUpdate) error

// Notify calls f.
func (f ObserverFunc) Notify(ctx context.Context, update entity.QueuedStateUpdate) error {
	return f(ctx, update)
}

// Broadcaster accepts outgoing notifications for fan-out.
type Broadcaster interface {
	Broadcast(ctx context.Context, update entity.QueuedStateUpdate) error
}

// UpdatePublisher accepts state updates for debounced delivery.
type UpdatePublisher interface {
	Enqueue(ctx context.Context, update entity.QueuedStateUpdate) error
}
