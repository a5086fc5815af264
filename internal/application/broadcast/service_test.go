package broadcast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/spacesync/internal/application/broadcast"
	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_FanOutToAllObservers(t *testing.T) {
	svc := broadcast.NewService()
	a, b := &recorder{}, &recorder{}
	svc.Subscribe(a)
	svc.Subscribe(b)

	require.NoError(t, svc.Broadcast(context.Background(), tabsUpdate(0)))
	assert.Len(t, a.Updates(), 1)
	assert.Len(t, b.Updates(), 1)
	assert.Equal(t, 2, svc.ObserverCount())
}

func TestService_FailingObserverDoesNotStopOthers(t *testing.T) {
	svc := broadcast.NewService()
	bad := &recorder{err: errors.New("boom")}
	good := &recorder{}
	svc.Subscribe(bad)
	svc.Subscribe(good)

	err := svc.Broadcast(context.Background(), tabsUpdate(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Len(t, good.Updates(), 1)
}

func TestService_ObserverTimeout(t *testing.T) {
	svc := broadcast.NewService(broadcast.WithNotifyTimeout(10 * time.Millisecond))
	svc.Subscribe(port.ObserverFunc(func(ctx context.Context, _ entity.QueuedStateUpdate) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	err := svc.Broadcast(context.Background(), tabsUpdate(0))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_Unsubscribe(t *testing.T) {
	svc := broadcast.NewService()
	rec := &recorder{}
	id := svc.Subscribe(rec)
	svc.Unsubscribe(id)
	svc.Unsubscribe(id)

	require.NoError(t, svc.Broadcast(context.Background(), tabsUpdate(0)))
	assert.Empty(t, rec.Updates())
}

func TestService_SubscribeChanDropsWhenFull(t *testing.T) {
	svc := broadcast.NewService()
	ch, cancel := svc.SubscribeChan(1)

	require.NoError(t, svc.Broadcast(context.Background(), tabsUpdate(0)))
	require.NoError(t, svc.Broadcast(context.Background(), tabsUpdate(1)))

	got := <-ch
	assert.Equal(t, "tabs-0", got.ID)

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, svc.ObserverCount())
}

func TestService_ClosedRejectsBroadcast(t *testing.T) {
	svc := broadcast.NewService()
	ch, _ := svc.SubscribeChan(4)
	svc.Close()

	_, open := <-ch
	assert.False(t, open)
	assert.ErrorIs(t, svc.Broadcast(context.Background(), tabsUpdate(0)), broadcast.ErrClosed)
}

func TestQueueAndService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := broadcast.NewService()
	ch, cancel := svc.SubscribeChan(16)
	defer cancel()

	q := broadcast.NewQueue(svc, broadcast.WithDebounce(time.Hour))
	require.NoError(t, q.Enqueue(ctx, tabsUpdate(0)))
	require.NoError(t, q.Enqueue(ctx, renameUpdate(0, "Inbox")))

	first := <-ch
	assert.Equal(t, entity.UpdateSpaceUpdated, first.Type)

	require.NoError(t, q.Flush(ctx))
	second := <-ch
	assert.Equal(t, entity.UpdateTabsChanged, second.Type)
}
