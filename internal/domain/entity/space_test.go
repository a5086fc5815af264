package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewSpace_Defaults(t *testing.T) {
	s := entity.NewSpace(42, "perm-1", []string{"https://go.dev/doc", "https://example.com"}, testNow)

	assert.Equal(t, entity.SpaceID("42"), s.ID)
	assert.Equal(t, entity.WindowID(42), s.WindowID)
	assert.Equal(t, "perm-1", s.PermanentID)
	assert.Equal(t, int64(1), s.Version)
	assert.False(t, s.Named)
	assert.True(t, s.IsActive)
	assert.Equal(t, "go.dev +1", s.Name)
	assert.True(t, s.CreatedAt.Equal(testNow))
}

func TestSpaceID_WindowID(t *testing.T) {
	id, ok := entity.SpaceIDForWindow(7).WindowID()
	require.True(t, ok)
	assert.Equal(t, entity.WindowID(7), id)

	_, ok = entity.ArchivedSpaceID("perm").WindowID()
	assert.False(t, ok)
	assert.True(t, entity.ArchivedSpaceID("perm").IsArchived())

	_, ok = entity.SpaceID("garbage").WindowID()
	assert.False(t, ok)
}

func TestSpace_Apply_PreservesIdentity(t *testing.T) {
	orig := entity.NewSpace(1, "perm-1", []string{"https://a.test"}, testNow)

	later := testNow.Add(time.Minute)
	closed := orig.Apply(orig.Archived(), later)
	restored := closed.Apply(entity.BoundTo(99, later.Add(time.Minute)), later.Add(time.Minute))
	urls := []string{"https://b.test"}
	refreshed := restored.Apply(entity.SpacePatch{URLs: urls}, later.Add(2*time.Minute))

	for _, s := range []entity.Space{closed, restored, refreshed} {
		assert.True(t, orig.SameIdentity(s), "identity drifted at version %d", s.Version)
	}

	assert.Equal(t, entity.ArchivedSpaceID("perm-1"), closed.ID)
	assert.False(t, closed.IsActive)
	assert.Equal(t, entity.WindowID(0), closed.WindowID)
	assert.Equal(t, entity.SpaceID("99"), restored.ID)
	assert.True(t, restored.IsActive)
	assert.Equal(t, []string{"https://b.test"}, refreshed.URLs)

	urls[0] = "mutated"
	assert.Equal(t, "https://b.test", refreshed.URLs[0], "patch slice must be copied")
}

func TestSpace_Apply_VersionStrictlyIncreases(t *testing.T) {
	s := entity.NewSpace(1, "perm-1", nil, testNow)
	prev := s.Version
	for i := 0; i < 5; i++ {
		s = s.Apply(entity.Renamed("name"), testNow)
		assert.Greater(t, s.Version, prev)
		prev = s.Version
	}
}

func TestSpace_Apply_DoesNotMutateReceiver(t *testing.T) {
	s := entity.NewSpace(1, "perm-1", []string{"https://a.test"}, testNow)
	_ = s.Apply(entity.Renamed("Work"), testNow.Add(time.Second))

	assert.Equal(t, int64(1), s.Version)
	assert.False(t, s.Named)
	assert.NotEqual(t, "Work", s.Name)
}

func TestRenamed_SetsNamed(t *testing.T) {
	s := entity.NewSpace(1, "perm-1", nil, testNow).Apply(entity.Renamed("Research"), testNow)
	assert.True(t, s.Named)
	assert.Equal(t, "Research", s.Name)
}

func TestDefaultSpaceName(t *testing.T) {
	assert.Equal(t, "Untitled space", entity.DefaultSpaceName(nil))
	assert.Equal(t, "news.example.org", entity.DefaultSpaceName([]string{"https://news.example.org/today?x=1"}))
	assert.Equal(t, "about:blank", entity.DefaultSpaceName([]string{"about:blank"}))
}
