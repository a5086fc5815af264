package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/infrastructure/host/memory"
)

type events struct {
	mu  sync.Mutex
	log []string
}

func (e *events) add(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = append(e.log, s)
}

func (e *events) get() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.log...)
}

func TestHost_CreateAndCloseEmitInOrder(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()

	var ev events
	h.OnWindowCreated(func(_ context.Context, w entity.Window) {
		ev.add("created:" + string(entity.SpaceIDForWindow(w.ID)))
	})
	h.OnWindowRemoved(func(_ context.Context, id entity.WindowID) {
		ev.add("removed:" + string(entity.SpaceIDForWindow(id)))
	})

	w, err := h.CreateWindow(ctx, []string{"https://a.example", "https://b.example"}, port.CreateWindowOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.WindowTypeNormal, w.Type)
	assert.True(t, w.Focused, "first window takes focus")
	require.Len(t, w.Tabs, 2)
	assert.Equal(t, 1, w.Tabs[1].Index)

	require.NoError(t, h.CloseWindow(ctx, w.ID))
	h.Close()

	assert.Equal(t, []string{"created:1", "removed:1"}, ev.get())

	exists, err := h.WindowExists(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHost_AttachKeepsIDAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()

	var ev events
	h.OnWindowCreated(func(_ context.Context, w entity.Window) {
		ev.add("created:" + string(entity.SpaceIDForWindow(w.ID)))
	})

	in := entity.Window{ID: 42, Type: entity.WindowTypePopup, Tabs: []entity.Tab{{URL: "https://a.example"}, {URL: ""}}}
	w, err := h.Attach(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.WindowID(42), w.ID)
	assert.Equal(t, []string{"https://a.example"}, w.URLs())

	in.Tabs = []entity.Tab{{URL: "https://b.example"}, {URL: "https://c.example"}}
	w, err = h.Attach(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, w.URLs())

	next, err := h.CreateWindow(ctx, nil, port.CreateWindowOptions{Type: entity.WindowTypeNormal})
	require.NoError(t, err)
	assert.Equal(t, entity.WindowID(43), next.ID, "host ids never collide with attached ones")

	h.Close()
	assert.Equal(t, []string{"created:42", "created:43"}, ev.get())
}

func TestHost_ReplaceMirrorsListingAndBecomesReady(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()

	var ev events
	h.OnWindowCreated(func(_ context.Context, w entity.Window) {
		ev.add("created:" + string(entity.SpaceIDForWindow(w.ID)))
	})
	h.OnWindowRemoved(func(_ context.Context, id entity.WindowID) {
		ev.add("removed:" + string(entity.SpaceIDForWindow(id)))
	})

	select {
	case <-h.Ready():
		t.Fatal("a fresh mirror is not ready")
	default:
	}

	_, err := h.Attach(ctx, entity.Window{ID: 1})
	require.NoError(t, err)
	_, err = h.Attach(ctx, entity.Window{ID: 2})
	require.NoError(t, err)

	got, err := h.Replace(ctx, []entity.Window{
		{ID: 2, Tabs: []entity.Tab{{URL: "https://b.example"}}},
		{ID: 5, Type: entity.WindowTypePopup},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"https://b.example"}, got[0].URLs())
	assert.Equal(t, entity.WindowTypePopup, got[1].Type)

	select {
	case <-h.Ready():
	default:
		t.Fatal("replace marks the mirror ready")
	}

	all, err := h.GetAllWindows(ctx)
	require.NoError(t, err)
	ids := make([]entity.WindowID, 0, len(all))
	for _, w := range all {
		ids = append(ids, w.ID)
	}
	assert.ElementsMatch(t, []entity.WindowID{2, 5}, ids)

	h.Close()
	assert.Equal(t, []string{"created:1", "created:2", "created:5", "removed:1"}, ev.get())
}

func TestHost_AttachRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()
	defer h.Close()

	_, err := h.Attach(ctx, entity.Window{ID: 0})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = h.Attach(ctx, entity.Window{ID: 1, Type: "tablet"})
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestHost_TabOperations(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()
	defer h.Close()

	a, err := h.CreateWindow(ctx, []string{"https://a.example"}, port.CreateWindowOptions{})
	require.NoError(t, err)
	b, err := h.CreateWindow(ctx, []string{"https://b.example"}, port.CreateWindowOptions{Focused: true})
	require.NoError(t, err)

	current, err := h.GetCurrentWindow(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, current.ID)

	created, err := h.CreateTabs(ctx, a.ID, []string{"https://c.example"})
	require.NoError(t, err)
	require.Len(t, created, 1)

	require.NoError(t, h.MoveTab(ctx, created[0].ID, b.ID, 0))
	tabs, err := h.ListTabs(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, "https://c.example", tabs[0].URL)
	assert.Equal(t, b.ID, tabs[0].WindowID)

	u := "https://d.example"
	pinned := true
	tab, err := h.UpdateTab(ctx, tabs[0].ID, port.TabUpdate{URL: &u, Pinned: &pinned})
	require.NoError(t, err)
	assert.True(t, tab.Pinned)

	got, err := h.GetTabURL(ctx, tab.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	require.NoError(t, h.WaitForTabLoad(ctx, tab.ID, time.Second))
	require.NoError(t, h.RemoveTab(ctx, tab.ID))
	assert.ErrorIs(t, h.WaitForTabLoad(ctx, tab.ID, time.Second), memory.ErrTabNotFound)

	all, err := h.GetAllWindows(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, []string{"https://a.example"}, all[0].URLs())
}

func TestHost_NotFound(t *testing.T) {
	ctx := context.Background()
	h := memory.NewHost()
	defer h.Close()

	_, err := h.GetWindow(ctx, 9)
	assert.ErrorIs(t, err, memory.ErrWindowNotFound)
	assert.ErrorIs(t, h.CloseWindow(ctx, 9), memory.ErrWindowNotFound)
	assert.ErrorIs(t, h.FocusWindow(ctx, 9), memory.ErrWindowNotFound)
	_, err = h.GetCurrentWindow(ctx)
	assert.ErrorIs(t, err, memory.ErrWindowNotFound)
	assert.ErrorIs(t, h.RemoveTab(ctx, 5), memory.ErrTabNotFound)
}

func TestHost_ClosedRejectsCreate(t *testing.T) {
	h := memory.NewHost()
	h.Close()
	h.Close()

	_, err := h.CreateWindow(context.Background(), nil, port.CreateWindowOptions{})
	assert.ErrorIs(t, err, memory.ErrClosed)
}
