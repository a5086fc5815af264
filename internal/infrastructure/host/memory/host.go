// Package memory implements the host window and tab ports in process.
// The serve command mirrors the real browser into it through the bridge
// intake routes; tests drive it directly.
package memory

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

var (
	ErrWindowNotFound = errors.New("window not found")
	ErrTabNotFound    = errors.New("tab not found")
	ErrClosed         = errors.New("host closed")
)

type hostEvent struct {
	ctx      context.Context
	created  *entity.Window
	removed  entity.WindowID
	isRemove bool
}

type windowState struct {
	window entity.Window
	tabs   []entity.TabID
}

// Host is an in-memory browser. Lifecycle events are delivered to the
// registered handlers on a single goroutine in the order they happened.
type Host struct {
	mu         sync.Mutex
	nextWindow entity.WindowID
	nextTab    entity.TabID
	windows    map[entity.WindowID]*windowState
	tabs       map[entity.TabID]entity.Tab
	current    entity.WindowID
	closed     bool

	handlersMu sync.RWMutex
	onCreated  []port.WindowCreatedHandler
	onRemoved  []port.WindowRemovedHandler

	ready     chan struct{}
	readyOnce sync.Once

	eventsMu sync.Mutex
	events   []hostEvent
	stopping bool
	wake     chan struct{}
	done     chan struct{}
}

var (
	_ port.WindowManager = (*Host)(nil)
	_ port.TabManager    = (*Host)(nil)
	_ port.HostReadiness = (*Host)(nil)
)

// NewHost starts an empty host. Call Close to stop event delivery.
func NewHost() *Host {
	h := &Host{
		windows: make(map[entity.WindowID]*windowState),
		tabs:    make(map[entity.TabID]entity.Tab),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		ready:   make(chan struct{}),
	}
	go h.run()
	return h
}

// Ready is closed once the window list reflects the real host.
func (h *Host) Ready() <-chan struct{} {
	return h.ready
}

// MarkReady declares the window list complete. Later calls are no-ops.
func (h *Host) MarkReady() {
	h.readyOnce.Do(func() { close(h.ready) })
}

// Replace makes the mirror match a full window listing from the real host:
// listed windows are attached, unlisted ones are closed, and the host becomes
// ready.
func (h *Host) Replace(ctx context.Context, windows []entity.Window) ([]entity.Window, error) {
	listed := make(map[entity.WindowID]struct{}, len(windows))
	out := make([]entity.Window, 0, len(windows))
	for _, w := range windows {
		attached, err := h.Attach(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("replace window %d: %w", w.ID, err)
		}
		listed[w.ID] = struct{}{}
		out = append(out, attached)
	}

	h.mu.Lock()
	var gone []entity.WindowID
	for id := range h.windows {
		if _, ok := listed[id]; !ok {
			gone = append(gone, id)
		}
	}
	h.mu.Unlock()
	slices.Sort(gone)

	for _, id := range gone {
		if err := h.CloseWindow(ctx, id); err != nil && !errors.Is(err, ErrWindowNotFound) {
			return nil, err
		}
	}

	h.MarkReady()
	logging.FromContext(ctx).Debug().Int("windows", len(out)).Int("closed", len(gone)).Msg("host mirror replaced")
	return out, nil
}

// OnWindowCreated registers a creation handler.
func (h *Host) OnWindowCreated(fn port.WindowCreatedHandler) {
	h.handlersMu.Lock()
	defer h.handlersMu.Unlock()
	h.onCreated = append(h.onCreated, fn)
}

// OnWindowRemoved registers a removal handler.
func (h *Host) OnWindowRemoved(fn port.WindowRemovedHandler) {
	h.handlersMu.Lock()
	defer h.handlersMu.Unlock()
	h.onRemoved = append(h.onRemoved, fn)
}

func (h *Host) run() {
	defer close(h.done)
	for range h.wake {
		h.eventsMu.Lock()
		batch := h.events
		h.events = nil
		stopping := h.stopping
		h.eventsMu.Unlock()

		for _, ev := range batch {
			h.deliver(ev)
		}
		if stopping {
			return
		}
	}
}

func (h *Host) deliver(ev hostEvent) {
	h.handlersMu.RLock()
	created := slices.Clone(h.onCreated)
	removed := slices.Clone(h.onRemoved)
	h.handlersMu.RUnlock()

	if ev.isRemove {
		for _, fn := range removed {
			fn(ev.ctx, ev.removed)
		}
		return
	}
	for _, fn := range created {
		fn(ev.ctx, *ev.created)
	}
}

// emitLocked queues an event. Callers hold h.mu so events keep host order.
func (h *Host) emitLocked(ctx context.Context, ev hostEvent) {
	ev.ctx = context.WithoutCancel(ctx)
	h.eventsMu.Lock()
	h.events = append(h.events, ev)
	h.eventsMu.Unlock()
	h.signal()
}

func (h *Host) signal() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

// Close stops event delivery after draining queued events.
func (h *Host) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	h.eventsMu.Lock()
	h.stopping = true
	h.eventsMu.Unlock()
	h.signal()
	<-h.done
}

func (h *Host) snapshotLocked(id entity.WindowID) entity.Window {
	ws := h.windows[id]
	w := ws.window
	w.Focused = id == h.current
	w.Tabs = make([]entity.Tab, 0, len(ws.tabs))
	for i, tabID := range ws.tabs {
		tab := h.tabs[tabID]
		tab.Index = i
		w.Tabs = append(w.Tabs, tab)
	}
	return w
}

func (h *Host) addTabsLocked(windowID entity.WindowID, urls []string) []entity.Tab {
	ws := h.windows[windowID]
	out := make([]entity.Tab, 0, len(urls))
	for _, u := range urls {
		h.nextTab++
		tab := entity.Tab{ID: h.nextTab, WindowID: windowID, Index: len(ws.tabs), URL: u}
		h.tabs[tab.ID] = tab
		ws.tabs = append(ws.tabs, tab.ID)
		out = append(out, tab)
	}
	return out
}

// CreateWindow opens a window with one tab per url and emits a creation event.
func (h *Host) CreateWindow(ctx context.Context, urls []string, opts port.CreateWindowOptions) (entity.Window, error) {
	if err := ctx.Err(); err != nil {
		return entity.Window{}, err
	}
	typ := opts.Type
	if typ == "" {
		typ = entity.WindowTypeNormal
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return entity.Window{}, ErrClosed
	}

	h.nextWindow++
	id := h.nextWindow
	h.windows[id] = &windowState{window: entity.Window{ID: id, Type: typ}}
	h.addTabsLocked(id, urls)
	if opts.Focused || h.current == 0 {
		h.current = id
	}

	w := h.snapshotLocked(id)
	logging.FromContext(ctx).Debug().Int64("window_id", int64(id)).Int("tabs", len(urls)).Msg("host window created")
	h.emitLocked(ctx, hostEvent{created: &w})
	return w, nil
}

// Attach mirrors a window reported by the real host. The window keeps its
// id; tab ids are reassigned. Attaching a known id replaces its tabs (and its
// type, when given) without a new creation event.
func (h *Host) Attach(ctx context.Context, window entity.Window) (entity.Window, error) {
	if window.ID <= 0 {
		return entity.Window{}, fmt.Errorf("%w: window id must be positive", entity.ErrInvalidArgument)
	}
	if window.Type != "" && !window.Type.Valid() {
		return entity.Window{}, fmt.Errorf("%w: unknown window type %q", entity.ErrInvalidArgument, window.Type)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return entity.Window{}, ErrClosed
	}

	ws, known := h.windows[window.ID]
	if known {
		for _, tabID := range ws.tabs {
			delete(h.tabs, tabID)
		}
		ws.tabs = nil
		if window.Type != "" {
			ws.window.Type = window.Type
		}
	} else {
		if window.Type == "" {
			window.Type = entity.WindowTypeNormal
		}
		h.windows[window.ID] = &windowState{window: entity.Window{ID: window.ID, Type: window.Type}}
		if window.ID > h.nextWindow {
			h.nextWindow = window.ID
		}
	}
	h.addTabsLocked(window.ID, window.URLs())
	if window.Focused {
		h.current = window.ID
	}

	w := h.snapshotLocked(window.ID)
	if !known {
		h.emitLocked(ctx, hostEvent{created: &w})
	}
	return w, nil
}

// CloseWindow removes a window and its tabs and emits a removal event.
func (h *Host) CloseWindow(ctx context.Context, id entity.WindowID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ws, ok := h.windows[id]
	if !ok {
		return fmt.Errorf("close window %d: %w", id, ErrWindowNotFound)
	}
	for _, tabID := range ws.tabs {
		delete(h.tabs, tabID)
	}
	delete(h.windows, id)
	if h.current == id {
		h.current = 0
	}

	logging.FromContext(ctx).Debug().Int64("window_id", int64(id)).Msg("host window removed")
	if !h.closed {
		h.emitLocked(ctx, hostEvent{removed: id, isRemove: true})
	}
	return nil
}

func (h *Host) FocusWindow(_ context.Context, id entity.WindowID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[id]; !ok {
		return fmt.Errorf("focus window %d: %w", id, ErrWindowNotFound)
	}
	h.current = id
	return nil
}

func (h *Host) GetWindow(_ context.Context, id entity.WindowID) (entity.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[id]; !ok {
		return entity.Window{}, fmt.Errorf("get window %d: %w", id, ErrWindowNotFound)
	}
	return h.snapshotLocked(id), nil
}

// GetAllWindows returns every window ordered by id.
func (h *Host) GetAllWindows(ctx context.Context) ([]entity.Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]entity.WindowID, 0, len(h.windows))
	for id := range h.windows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]entity.Window, 0, len(ids))
	for _, id := range ids {
		out = append(out, h.snapshotLocked(id))
	}
	return out, nil
}

func (h *Host) WindowExists(_ context.Context, id entity.WindowID) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.windows[id]
	return ok, nil
}

func (h *Host) GetCurrentWindow(_ context.Context) (entity.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[h.current]; !ok {
		return entity.Window{}, fmt.Errorf("current window: %w", ErrWindowNotFound)
	}
	return h.snapshotLocked(h.current), nil
}

func (h *Host) ListTabs(_ context.Context, windowID entity.WindowID) ([]entity.Tab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[windowID]; !ok {
		return nil, fmt.Errorf("list tabs of %d: %w", windowID, ErrWindowNotFound)
	}
	return h.snapshotLocked(windowID).Tabs, nil
}

func (h *Host) GetTabURL(_ context.Context, tabID entity.TabID) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	tab, ok := h.tabs[tabID]
	if !ok {
		return "", fmt.Errorf("get tab %d: %w", tabID, ErrTabNotFound)
	}
	return tab.URL, nil
}

func (h *Host) CreateTabs(_ context.Context, windowID entity.WindowID, urls []string) ([]entity.Tab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[windowID]; !ok {
		return nil, fmt.Errorf("create tabs in %d: %w", windowID, ErrWindowNotFound)
	}
	return h.addTabsLocked(windowID, urls), nil
}

// MoveTab moves a tab to index in windowID. Out of range indexes append.
func (h *Host) MoveTab(_ context.Context, tabID entity.TabID, windowID entity.WindowID, index int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	tab, ok := h.tabs[tabID]
	if !ok {
		return fmt.Errorf("move tab %d: %w", tabID, ErrTabNotFound)
	}
	dst, ok := h.windows[windowID]
	if !ok {
		return fmt.Errorf("move tab %d: %w", tabID, ErrWindowNotFound)
	}

	src := h.windows[tab.WindowID]
	src.tabs = slices.DeleteFunc(src.tabs, func(id entity.TabID) bool { return id == tabID })
	if index < 0 || index > len(dst.tabs) {
		index = len(dst.tabs)
	}
	dst.tabs = slices.Insert(dst.tabs, index, tabID)
	tab.WindowID = windowID
	h.tabs[tabID] = tab
	return nil
}

func (h *Host) RemoveTab(_ context.Context, tabID entity.TabID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	tab, ok := h.tabs[tabID]
	if !ok {
		return fmt.Errorf("remove tab %d: %w", tabID, ErrTabNotFound)
	}
	ws := h.windows[tab.WindowID]
	ws.tabs = slices.DeleteFunc(ws.tabs, func(id entity.TabID) bool { return id == tabID })
	delete(h.tabs, tabID)
	return nil
}

func (h *Host) UpdateTab(_ context.Context, tabID entity.TabID, update port.TabUpdate) (entity.Tab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	tab, ok := h.tabs[tabID]
	if !ok {
		return entity.Tab{}, fmt.Errorf("update tab %d: %w", tabID, ErrTabNotFound)
	}
	if update.URL != nil {
		tab.URL = *update.URL
	}
	if update.Pinned != nil {
		tab.Pinned = *update.Pinned
	}
	if update.Active != nil && *update.Active {
		h.current = tab.WindowID
	}
	h.tabs[tabID] = tab
	return tab, nil
}

// WaitForTabLoad returns once the tab exists. In-memory tabs load instantly.
func (h *Host) WaitForTabLoad(ctx context.Context, tabID entity.TabID, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	h.mu.Lock()
	_, ok := h.tabs[tabID]
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("wait for tab %d: %w", tabID, ErrTabNotFound)
	}
	return ctx.Err()
}
