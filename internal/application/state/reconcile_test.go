package state_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spacesync/internal/application/restore"
	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/infrastructure/host/memory"
)

func TestSynchronize_WindowBoundDuringPassIsNotArchived(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)

	f.windows.EXPECT().GetAllWindows(mock.Anything).
		RunAndReturn(func(context.Context) ([]entity.Window, error) {
			// Window 40 opens after the host listed its windows.
			_, err := f.manager.HandleWindowCreated(ctx, window(40, entity.WindowTypeNormal, "D"))
			require.NoError(t, err)
			return []entity.Window{window(10, entity.WindowTypeNormal, "A")}, nil
		})

	report, err := f.manager.SynchronizeWindowsAndSpaces(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Archived)

	late, ok := f.manager.SpaceForWindow(40)
	require.True(t, ok, "space of a live window must stay active")
	assert.True(t, late.IsActive)
	assert.Empty(t, f.manager.GetClosedSpaces())
}

func TestRun_WaitsForHostWindowList(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()

	repo := newMemRepo()
	for _, s := range []entity.Space{
		entity.NewSpace(10, "perm-10", []string{"A"}, baseTime),
		entity.NewSpace(11, "perm-11", []string{"B"}, baseTime),
	} {
		require.NoError(t, repo.SaveSpace(ctx, s, 0))
	}

	host := memory.NewHost()
	t.Cleanup(host.Close)

	m := state.NewManager(repo, host, host, restore.NewRegistry(), nil, state.WithConfig(state.Config{
		SyncInterval:    10 * time.Millisecond,
		CleanupInterval: time.Second,
	}))
	require.NoError(t, m.Load(ctx))
	m.ListenTo(host)

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	report, err := m.SynchronizeWindowsAndSpaces(ctx)
	require.NoError(t, err)
	assert.True(t, report.HostPending)
	assert.Zero(t, report.Archived)

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, m.GetAllSpaces(), 2, "an empty mirror must not archive persisted spaces")

	_, err = host.Replace(ctx, []entity.Window{{
		ID:   10,
		Type: entity.WindowTypeNormal,
		Tabs: []entity.Tab{{URL: "A"}},
	}})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return !m.HasSpace("11") }, 2*time.Second, 10*time.Millisecond)
	kept, ok := m.SpaceForWindow(10)
	require.True(t, ok)
	assert.Equal(t, "perm-10", kept.PermanentID)
	assert.Len(t, m.GetClosedSpaces(), 1)

	cancel()
	require.NoError(t, <-done)
}
