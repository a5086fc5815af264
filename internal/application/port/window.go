package port

import (
	"context"
	"time"

	"github.com/bnema/spacesync/internal/domain/entity"
)

// CreateWindowOptions tunes a host window creation request.
type CreateWindowOptions struct {
	Type    entity.WindowType
	Focused bool
}

// WindowManager issues and queries host window operations.
// Implemented by the host adapter.
type WindowManager interface {
	CreateWindow(ctx context.Context, urls []string, opts CreateWindowOptions) (entity.Window, error)
	CloseWindow(ctx context.Context, id entity.WindowID) error
	FocusWindow(ctx context.Context, id entity.WindowID) error
	GetWindow(ctx context.Context, id entity.WindowID) (entity.Window, error)
	GetAllWindows(ctx context.Context) ([]entity.Window, error)
	WindowExists(ctx context.Context, id entity.WindowID) (bool, error)
	GetCurrentWindow(ctx context.Context) (entity.Window, error)
}

// TabUpdate is a partial tab update. Nil fields are left untouched.
type TabUpdate struct {
	URL    *string
	Pinned *bool
	Active *bool
}

// TabManager issues and queries host tab operations.
type TabManager interface {
	ListTabs(ctx context.Context, windowID entity.WindowID) ([]entity.Tab, error)
	GetTabURL(ctx context.Context, tabID entity.TabID) (string, error)
	CreateTabs(ctx context.Context, windowID entity.WindowID, urls []string) ([]entity.Tab, error)
	MoveTab(ctx context.Context, tabID entity.TabID, windowID entity.WindowID, index int) error
	RemoveTab(ctx context.Context, tabID entity.TabID) error
	UpdateTab(ctx context.Context, tabID entity.TabID, update TabUpdate) (entity.Tab, error)
	WaitForTabLoad(ctx context.Context, tabID entity.TabID, timeout time.Duration) error
}

// WindowCreatedHandler receives host window-creation events.
type WindowCreatedHandler func(ctx context.Context, window entity.Window)

// WindowRemovedHandler receives host window-removal events.
type WindowRemovedHandler func(ctx context.Context, windowID entity.WindowID)

// WindowEventSource is a host that pushes window lifecycle events.
type WindowEventSource interface {
	OnWindowCreated(fn WindowCreatedHandler)
	OnWindowRemoved(fn WindowRemovedHandler)
}

// HostReadiness is implemented by hosts that start empty and learn their
// windows later, such as a mirror fed by a browser extension. Until Ready is
// closed the window list is incomplete and must not be used to archive spaces.
type HostReadiness interface {
	Ready() <-chan struct{}
}
