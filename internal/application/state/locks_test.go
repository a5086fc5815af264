package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spacesync/internal/domain/entity"
)

func TestSpaceLocks_MutualExclusionAndCleanup(t *testing.T) {
	l := newSpaceLocks()
	ctx := context.Background()

	release, err := l.acquire(ctx, time.Second, "10")
	require.NoError(t, err)

	_, err = l.acquire(ctx, 10*time.Millisecond, "10")
	require.ErrorIs(t, err, entity.ErrLockTimeout)

	other, err := l.acquire(ctx, 10*time.Millisecond, "11")
	require.NoError(t, err, "different spaces do not contend")
	other()

	release()
	release()
	assert.Equal(t, 0, l.size())

	again, err := l.acquire(ctx, 10*time.Millisecond, "10")
	require.NoError(t, err)
	again()
}

func TestSpaceLocks_AllOrNothing(t *testing.T) {
	l := newSpaceLocks()
	ctx := context.Background()

	holdB, err := l.acquire(ctx, time.Second, "closed:b")
	require.NoError(t, err)

	_, err = l.acquire(ctx, 10*time.Millisecond, "10", "closed:b")
	var timeout *entity.LockTimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, entity.SpaceID("closed:b"), timeout.SpaceID)

	solo, err := l.acquire(ctx, 10*time.Millisecond, "10")
	require.NoError(t, err, "partial acquisition was released")
	solo()
	holdB()
}

func TestSpaceLocks_ContextCancel(t *testing.T) {
	l := newSpaceLocks()
	hold, err := l.acquire(context.Background(), time.Second, "10")
	require.NoError(t, err)
	defer hold()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.acquire(ctx, time.Second, "10")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSpaceLocks_DuplicateKeys(t *testing.T) {
	l := newSpaceLocks()
	release, err := l.acquire(context.Background(), 10*time.Millisecond, "10", "10")
	require.NoError(t, err, "duplicate keys must not self-deadlock")
	release()
	assert.Equal(t, 0, l.size())
}
