package state_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/domain/entity"
	repomocks "github.com/bnema/spacesync/internal/domain/repository/mocks"
)

func TestCreateSpace_NewIdentity(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	f.tabs.EXPECT().ListTabs(mock.Anything, entity.WindowID(10)).
		Return(window(10, entity.WindowTypeNormal, "https://a.test/x", "https://b.test").Tabs, nil)

	space, err := f.manager.CreateSpace(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, entity.SpaceID("10"), space.ID)
	assert.Equal(t, int64(1), space.Version)
	assert.False(t, space.Named)
	assert.NotEmpty(t, space.PermanentID)
	assert.Equal(t, []string{"https://a.test/x", "https://b.test"}, space.URLs)
	assert.Equal(t, "a.test +1", space.Name)
	assert.True(t, f.manager.HasSpace("10"))

	created := f.pub.ofType(entity.UpdateSpaceCreated)
	require.Len(t, created, 1)
	assert.Equal(t, entity.PriorityHigh, created[0].Priority)

	again, err := f.manager.CreateSpace(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, space.PermanentID, again.PermanentID, "second create for a bound window is a no-op")
}

func TestRenameSpace_PreservesIdentityAndBumpsVersion(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)

	created, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	require.False(t, created)
	before, ok := f.manager.GetSpaceByID("10")
	require.True(t, ok)

	renamed, err := f.manager.SetSpaceName(ctx, "10", "  Work  ")
	require.NoError(t, err)

	assert.Equal(t, "Work", renamed.Name)
	assert.True(t, renamed.Named)
	assert.Equal(t, before.Version+1, renamed.Version)
	assert.Equal(t, before.PermanentID, renamed.PermanentID)
	assert.Equal(t, before.CreatedAt, renamed.CreatedAt)

	stored, ok := repo.stored("10")
	require.True(t, ok)
	assert.Equal(t, "Work", stored.Name)
	assert.Equal(t, renamed.Version, stored.Version)

	updates := f.pub.ofType(entity.UpdateSpaceUpdated)
	require.Len(t, updates, 1)
	assert.Equal(t, entity.PriorityCritical, updates[0].Priority)
	assert.True(t, updates[0].BypassesDebounce())
	payload := updates[0].Payload.(entity.SpaceUpdatedPayload)
	require.NotNil(t, payload.Changes.Name)
	assert.Equal(t, "Work", *payload.Changes.Name)
	assert.Equal(t, renamed.Version, payload.Version)
}

func TestRenameSpace_InvalidArguments(t *testing.T) {
	ctx := testCtx()
	repo := repomocks.NewMockSpaceRepository(t)
	f := newFixture(t, repo)

	_, err := f.manager.SetSpaceName(ctx, "10", "   ")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = f.manager.SetSpaceName(ctx, "missing", "Work")
	assert.ErrorIs(t, err, entity.ErrSpaceNotFound)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
	assert.Empty(t, f.pub.ofType(entity.UpdateSpaceUpdated))
}

func loadOne(t *testing.T, f *fixture, repo *repomocks.MockSpaceRepository, s entity.Space) {
	t.Helper()
	repo.EXPECT().LoadSpaces(mock.Anything).Return(map[entity.SpaceID]entity.Space{s.ID: s}, nil).Once()
	repo.EXPECT().LoadClosedSpaces(mock.Anything).Return(map[entity.SpaceID]entity.Space{}, nil).Once()
	require.NoError(t, f.manager.Load(testCtx()))
}

func TestRenameSpace_RollbackOnStorageFailure(t *testing.T) {
	ctx := testCtx()
	repo := repomocks.NewMockSpaceRepository(t)
	f := newFixture(t, repo)

	original := entity.NewSpace(10, "perm-1", []string{"A"}, baseTime)
	loadOne(t, f, repo, original)

	repo.EXPECT().GetSpace(mock.Anything, entity.SpaceID("10")).Return(&original, nil)
	repo.EXPECT().SaveSpace(mock.Anything, mock.AnythingOfType("entity.Space"), int64(1)).
		Return(errors.New("disk full"))

	_, err := f.manager.SetSpaceName(ctx, "10", "Work")
	require.ErrorIs(t, err, entity.ErrStorageFailure)
	assert.Contains(t, err.Error(), "disk full")

	got, ok := f.manager.GetSpaceByID("10")
	require.True(t, ok)
	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.Version, got.Version)
	assert.False(t, got.Named)
	assert.Empty(t, f.pub.ofType(entity.UpdateSpaceUpdated))
}

func TestRenameSpace_VersionConflictAdoptsPersisted(t *testing.T) {
	ctx := testCtx()
	repo := repomocks.NewMockSpaceRepository(t)
	f := newFixture(t, repo)

	original := entity.NewSpace(10, "perm-1", []string{"A"}, baseTime)
	loadOne(t, f, repo, original)

	winner := original.Apply(entity.Renamed("Elsewhere"), baseTime.Add(time.Minute))
	winner = winner.Apply(entity.SpacePatch{}, baseTime.Add(2*time.Minute))
	repo.EXPECT().GetSpace(mock.Anything, entity.SpaceID("10")).Return(&winner, nil)

	_, err := f.manager.SetSpaceName(ctx, "10", "Work")
	var conflict *entity.VersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(1), conflict.Expected)
	assert.Equal(t, int64(3), conflict.Current)
	assert.True(t, entity.IsRetryable(err))

	got, _ := f.manager.GetSpaceByID("10")
	assert.Equal(t, "Elsewhere", got.Name)
	assert.Equal(t, int64(3), got.Version)
}

func TestRenameSpace_CompareAndSwapConflict(t *testing.T) {
	ctx := testCtx()
	repo := repomocks.NewMockSpaceRepository(t)
	f := newFixture(t, repo)

	original := entity.NewSpace(10, "perm-1", []string{"A"}, baseTime)
	loadOne(t, f, repo, original)

	winner := original.Apply(entity.Renamed("Racer"), baseTime.Add(time.Second))
	repo.EXPECT().GetSpace(mock.Anything, entity.SpaceID("10")).Return(&original, nil).Once()
	repo.EXPECT().SaveSpace(mock.Anything, mock.Anything, int64(1)).
		Return(&entity.VersionConflictError{SpaceID: "10", Expected: 1, Current: 2})
	repo.EXPECT().GetSpace(mock.Anything, entity.SpaceID("10")).Return(&winner, nil).Once()

	_, err := f.manager.SetSpaceName(ctx, "10", "Work")
	require.ErrorIs(t, err, entity.ErrVersionConflict)

	got, _ := f.manager.GetSpaceByID("10")
	assert.Equal(t, "Racer", got.Name)
	assert.Equal(t, int64(2), got.Version)
}

func TestRenameSpace_ExpectedVersionMismatch(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())
	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)

	_, err = f.manager.RenameSpace(ctx, state.RenameInput{SpaceID: "10", Name: "Work", ExpectedVersion: 7})
	require.ErrorIs(t, err, entity.ErrVersionConflict)

	got, _ := f.manager.GetSpaceByID("10")
	assert.Equal(t, int64(1), got.Version)
}

func TestRenameSpace_LockTimeout(t *testing.T) {
	ctx := testCtx()
	repo := repomocks.NewMockSpaceRepository(t)
	cfg := state.DefaultConfig()
	cfg.LockTimeout = 20 * time.Millisecond
	f := newFixture(t, repo, cfg)

	original := entity.NewSpace(10, "perm-1", []string{"A"}, baseTime)
	loadOne(t, f, repo, original)

	entered := make(chan struct{})
	unblock := make(chan struct{})
	repo.EXPECT().GetSpace(mock.Anything, entity.SpaceID("10")).
		RunAndReturn(func(context.Context, entity.SpaceID) (*entity.Space, error) {
			close(entered)
			<-unblock
			return &original, nil
		}).Once()
	repo.EXPECT().SaveSpace(mock.Anything, mock.Anything, int64(1)).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.manager.SetSpaceName(ctx, "10", "First")
		done <- err
	}()
	<-entered

	_, err := f.manager.SetSpaceName(ctx, "10", "Second")
	require.ErrorIs(t, err, entity.ErrLockTimeout)
	assert.True(t, entity.IsRetryable(err))

	close(unblock)
	require.NoError(t, <-done)
	got, _ := f.manager.GetSpaceByID("10")
	assert.Equal(t, "First", got.Name)
}

func TestRenameSpace_ConcurrentCallsSerialize(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)
	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	start, _ := f.manager.GetSpaceByID("10")

	names := []string{"Alpha", "Beta"}
	results := make([]entity.Space, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := f.manager.SetSpaceName(ctx, "10", name)
			assert.NoError(t, err)
			results[i] = s
		}()
	}
	wg.Wait()

	stored, ok := repo.stored("10")
	require.True(t, ok)
	assert.GreaterOrEqual(t, stored.Version, start.Version+1)
	assert.Equal(t, start.Version+2, stored.Version)

	last := results[0]
	if results[1].Version > last.Version {
		last = results[1]
	}
	assert.Equal(t, last.Name, stored.Name, "last persisted rename wins")
	assert.Equal(t, start.PermanentID, stored.PermanentID)
}

func TestCloseSpace_ArchivesWithIdentity(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)
	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	active, _ := f.manager.GetSpaceByID("10")

	archived, err := f.manager.CloseSpace(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, entity.ArchivedSpaceID(active.PermanentID), archived.ID)
	assert.False(t, archived.IsActive)
	assert.Zero(t, archived.WindowID)
	assert.True(t, active.SameIdentity(archived))
	assert.Equal(t, active.Version+1, archived.Version)
	assert.False(t, f.manager.HasSpace("10"))
	assert.Len(t, f.manager.GetClosedSpaces(), 1)

	_, inStore := repo.stored("10")
	assert.False(t, inStore)
	_, inStore = repo.stored(archived.ID)
	assert.True(t, inStore)

	closed := f.pub.ofType(entity.UpdateSpaceClosed)
	require.Len(t, closed, 1)
	assert.Equal(t, entity.SpaceID("10"), closed[0].Payload.(entity.SpaceLifecyclePayload).PreviousID)

	_, err = f.manager.CloseSpace(ctx, 10)
	assert.ErrorIs(t, err, entity.ErrSpaceNotFound)
}

func TestCloseSpace_RollbackOnStorageFailure(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)
	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	before, _ := f.manager.GetSpaceByID("10")

	repo.saveErr = errors.New("readonly database")
	_, err = f.manager.CloseSpace(ctx, 10)
	require.ErrorIs(t, err, entity.ErrStorageFailure)

	after, ok := f.manager.GetSpaceByID("10")
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Empty(t, f.manager.GetClosedSpaces())
}

func TestIdentityPreservedAcrossRenameCloseRestore(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A", "B"))
	require.NoError(t, err)
	first, _ := f.manager.GetSpaceByID("10")

	renamed, err := f.manager.SetSpaceName(ctx, "10", "Research")
	require.NoError(t, err)
	archived, err := f.manager.CloseSpace(ctx, 10)
	require.NoError(t, err)

	snap, err := f.manager.RegisterRestoreIntent(ctx, archived.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.WindowTypeNormal, snap.ExpectedType)
	assert.Equal(t, "Research", snap.OriginalName)

	restored, err := f.manager.HandleWindowCreated(ctx, window(20, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	require.True(t, restored)

	back, ok := f.manager.GetSpaceByID("20")
	require.True(t, ok)
	assert.True(t, back.IsActive)
	assert.Equal(t, entity.WindowID(20), back.WindowID)
	assert.Equal(t, first.PermanentID, back.PermanentID)
	assert.Equal(t, first.CreatedAt, back.CreatedAt)
	assert.True(t, back.Named)
	assert.Equal(t, "Research", back.Name)

	versions := []int64{first.Version, renamed.Version, archived.Version, back.Version}
	for i := 1; i < len(versions); i++ {
		assert.Greater(t, versions[i], versions[i-1])
	}

	assert.False(t, f.manager.HasSpace(archived.ID))
	assert.Empty(t, f.registry.Pending())
	_, stillTracked := f.registry.AttachedTo(20)
	assert.False(t, stillTracked, "finalized intents are forgotten")
	assert.Len(t, f.pub.ofType(entity.UpdateSpaceRestored), 1)
}

func TestHandleWindowCreated_RestoreMatching(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A", "B"))
	require.NoError(t, err)
	archived, err := f.manager.CloseSpace(ctx, 10)
	require.NoError(t, err)
	_, err = f.manager.RegisterRestoreIntent(ctx, archived.ID, entity.WindowTypeNormal)
	require.NoError(t, err)

	restored, err := f.manager.HandleWindowCreated(ctx, window(11, entity.WindowTypePopup, "A"))
	require.NoError(t, err)
	assert.False(t, restored, "popup never matches a normal intent")

	restored, err = f.manager.HandleWindowCreated(ctx, window(12, entity.WindowTypeNormal, "C"))
	require.NoError(t, err)
	assert.False(t, restored, "no overlap becomes a new space")

	fresh, ok := f.manager.GetSpaceByID("12")
	require.True(t, ok)
	assert.NotEqual(t, archived.PermanentID, fresh.PermanentID)
	assert.Len(t, f.registry.Pending(), 1)

	restored, err = f.manager.HandleWindowCreated(ctx, window(13, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	assert.True(t, restored)

	again, err := f.manager.HandleWindowCreated(ctx, window(13, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	assert.False(t, again, "duplicate host events are ignored")
	assert.Len(t, f.manager.GetAllSpaces(), 3)
}

func TestHandleWindowCreated_StaleIntentNeverMatches(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	archived, err := f.manager.CloseSpace(ctx, 10)
	require.NoError(t, err)
	_, err = f.manager.RegisterRestoreIntent(ctx, archived.ID, entity.WindowTypeNormal)
	require.NoError(t, err)

	// No cleanup sweep runs: expiry alone must stop the match.
	f.clock.Advance(35 * time.Second)
	assert.Empty(t, f.registry.Pending())

	restored, err := f.manager.HandleWindowCreated(ctx, window(20, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	assert.False(t, restored)
	assert.True(t, f.manager.HasSpace(archived.ID), "archive stays put")

	fresh, ok := f.manager.SpaceForWindow(20)
	require.True(t, ok)
	assert.NotEqual(t, archived.PermanentID, fresh.PermanentID)
}

func TestRestoreSpace_CreatesWindowAndFinalizes(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A", "B"))
	require.NoError(t, err)
	archived, err := f.manager.CloseSpace(ctx, 10)
	require.NoError(t, err)

	f.windows.EXPECT().
		CreateWindow(mock.Anything, []string{"A", "B"}, mock.MatchedBy(func(o port.CreateWindowOptions) bool {
			return o.Type == entity.WindowTypeNormal && o.Focused
		})).
		Return(window(30, entity.WindowTypeNormal, "A", "B"), nil)

	snap, err := f.manager.RestoreSpace(ctx, archived.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.RestoreFinalized, snap.Status)
	require.NotNil(t, snap.WindowID)
	assert.Equal(t, entity.WindowID(30), *snap.WindowID)

	space, ok := f.manager.SpaceForWindow(30)
	require.True(t, ok)
	assert.Equal(t, archived.PermanentID, space.PermanentID)

	restored, err := f.manager.HandleWindowCreated(ctx, window(30, entity.WindowTypeNormal, "A", "B"))
	require.NoError(t, err)
	assert.False(t, restored, "late host event for the same window is a no-op")
}

func TestRestoreSpace_WindowCreationFailure(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	archived, err := f.manager.CloseSpace(ctx, 10)
	require.NoError(t, err)

	f.windows.EXPECT().CreateWindow(mock.Anything, mock.Anything, mock.Anything).
		Return(entity.Window{}, errors.New("host unavailable"))

	_, err = f.manager.RestoreSpace(ctx, archived.ID, entity.WindowTypeNormal)
	require.Error(t, err)
	assert.Empty(t, f.registry.Pending())
	assert.True(t, f.manager.HasSpace(archived.ID))
}

func TestRegisterRestoreIntent_UnknownOrActive(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	_, err := f.manager.RegisterRestoreIntent(ctx, "closed:nope", "")
	assert.ErrorIs(t, err, entity.ErrSpaceNotFound)

	_, err = f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	_, err = f.manager.RegisterRestoreIntent(ctx, "10", "")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestDeleteSpace(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)

	err = f.manager.DeleteSpace(ctx, "10")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument, "active spaces cannot be deleted")

	archived, err := f.manager.CloseSpace(ctx, 10)
	require.NoError(t, err)
	_, err = f.manager.RegisterRestoreIntent(ctx, archived.ID, "")
	require.NoError(t, err)

	require.NoError(t, f.manager.DeleteSpace(ctx, archived.ID))
	assert.False(t, f.manager.HasSpace(archived.ID))
	_, inStore := repo.stored(archived.ID)
	assert.False(t, inStore)
	assert.Empty(t, f.registry.Pending(), "intent cancelled with its space")
	assert.Len(t, f.pub.ofType(entity.UpdateSpaceDeleted), 1)
}

func TestRekeySpace(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	_, err = f.manager.HandleWindowCreated(ctx, window(11, entity.WindowTypeNormal, "B"))
	require.NoError(t, err)
	before, _ := f.manager.GetSpaceByID("10")

	_, err = f.manager.RekeySpace(ctx, "10", 11)
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	after, err := f.manager.RekeySpace(ctx, "10", 42)
	require.NoError(t, err)
	assert.Equal(t, entity.SpaceID("42"), after.ID)
	assert.Equal(t, entity.WindowID(42), after.WindowID)
	assert.True(t, before.SameIdentity(after))
	assert.Equal(t, before.Name, after.Name)
	assert.Greater(t, after.Version, before.Version)

	assert.False(t, f.manager.HasSpace("10"))
	_, inStore := repo.stored("42")
	assert.True(t, inStore)
	assert.Len(t, f.pub.ofType(entity.UpdateSpaceRekeyed), 1)
}

func TestRefreshSpaceTabs(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)

	f.tabs.EXPECT().ListTabs(mock.Anything, entity.WindowID(10)).
		Return(window(10, entity.WindowTypeNormal, "A").Tabs, nil).Once()
	same, err := f.manager.RefreshSpaceTabs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), same.Version, "unchanged tabs do not bump the version")

	f.tabs.EXPECT().ListTabs(mock.Anything, entity.WindowID(10)).
		Return(window(10, entity.WindowTypeNormal, "A", "B").Tabs, nil).Once()
	changed, err := f.manager.RefreshSpaceTabs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, changed.URLs)
	assert.Equal(t, int64(2), changed.Version)

	tabs := f.pub.ofType(entity.UpdateTabsChanged)
	require.Len(t, tabs, 1)
	assert.Equal(t, entity.PriorityNormal, tabs[0].Priority)
	assert.False(t, tabs[0].BypassesDebounce())
}

func TestBroadcastFailureDoesNotRollBack(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)
	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)

	f.pub.err = errors.New("no observers reachable")
	renamed, err := f.manager.SetSpaceName(ctx, "10", "Kept")
	require.NoError(t, err)

	stored, _ := repo.stored("10")
	assert.Equal(t, "Kept", stored.Name)
	assert.Equal(t, renamed.Version, stored.Version)
}

func TestSynchronizeWindowsAndSpaces(t *testing.T) {
	ctx := testCtx()
	repo := newMemRepo()
	f := newFixture(t, repo)

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	_, err = f.manager.HandleWindowCreated(ctx, window(11, entity.WindowTypeNormal, "B"))
	require.NoError(t, err)

	f.windows.EXPECT().GetAllWindows(mock.Anything).Return([]entity.Window{
		window(10, entity.WindowTypeNormal, "A"),
		{ID: 30, Type: entity.WindowTypeNormal},
	}, nil)
	f.tabs.EXPECT().ListTabs(mock.Anything, entity.WindowID(30)).
		Return(window(30, entity.WindowTypeNormal, "C").Tabs, nil)

	report, err := f.manager.SynchronizeWindowsAndSpaces(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Windows)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Archived)
	assert.Zero(t, report.Failed)

	assert.True(t, f.manager.HasSpace("10"))
	assert.False(t, f.manager.HasSpace("11"))
	created, ok := f.manager.GetSpaceByID("30")
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, created.URLs)

	_, ok, _ = repo.GetMetadata(ctx, state.LastSyncMetadataKey)
	assert.True(t, ok)
	assert.NotEmpty(t, f.pub.ofType(entity.UpdateSpacesReplaced))
}

func TestHandleWindowRemoved(t *testing.T) {
	ctx := testCtx()
	f := newFixture(t, newMemRepo())

	require.NoError(t, f.manager.HandleWindowRemoved(ctx, 99), "unknown windows are ignored")

	_, err := f.manager.HandleWindowCreated(ctx, window(10, entity.WindowTypeNormal, "A"))
	require.NoError(t, err)
	require.NoError(t, f.manager.HandleWindowRemoved(ctx, 10))
	assert.False(t, f.manager.HasSpace("10"))
	assert.Len(t, f.manager.GetClosedSpaces(), 1)
}

func TestLoad_StorageFailure(t *testing.T) {
	repo := repomocks.NewMockSpaceRepository(t)
	f := newFixture(t, repo)
	repo.EXPECT().LoadSpaces(mock.Anything).Return(nil, errors.New("locked"))

	err := f.manager.Load(testCtx())
	assert.ErrorIs(t, err, entity.ErrStorageFailure)
}
