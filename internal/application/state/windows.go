package state

import (
	"context"
	"fmt"

	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// RegisterRestoreIntent records that the next matching window should become
// the archived space closedID. An empty expectedType uses the configured
// default.
func (m *Manager) RegisterRestoreIntent(ctx context.Context, closedID entity.SpaceID, expectedType entity.WindowType) (entity.RestoreSnapshot, error) {
	archived, ok := m.current(closedID)
	if !ok {
		return entity.RestoreSnapshot{}, fmt.Errorf("register restore %s: %w", closedID, entity.ErrSpaceNotFound)
	}
	if expectedType == "" {
		expectedType = m.cfg.DefaultWindowType
	}
	snap, err := m.registry.Register(ctx, archived, expectedType)
	if err != nil {
		return entity.RestoreSnapshot{}, fmt.Errorf("register restore %s: %w", closedID, err)
	}
	return snap, nil
}

// CancelRestoreIntent drops a pending intent. It reports whether one existed.
func (m *Manager) CancelRestoreIntent(ctx context.Context, closedID entity.SpaceID) bool {
	return m.registry.Cancel(ctx, closedID)
}

// RestoreSpace registers a restore intent and asks the host for a window
// carrying the archived URLs. The returned snapshot reflects the intent after
// the created window has been offered to HandleWindowCreated.
func (m *Manager) RestoreSpace(ctx context.Context, closedID entity.SpaceID, expectedType entity.WindowType) (snap entity.RestoreSnapshot, err error) {
	defer func() { observe("restore", err) }()

	snap, err = m.RegisterRestoreIntent(ctx, closedID, expectedType)
	if err != nil {
		return entity.RestoreSnapshot{}, err
	}

	hctx, cancel := m.hostContext(ctx)
	window, err := m.windows.CreateWindow(hctx, snap.URLs, port.CreateWindowOptions{Type: snap.ExpectedType, Focused: true})
	cancel()
	if err != nil {
		m.registry.Fail(ctx, closedID, err.Error())
		return entity.RestoreSnapshot{}, fmt.Errorf("create window: %w", err)
	}

	// The host event for this window may arrive before or after this call;
	// HandleWindowCreated is idempotent per window.
	if _, err := m.HandleWindowCreated(ctx, window); err != nil {
		return snap, err
	}

	if current, ok := m.registry.Get(closedID); ok {
		return current, nil
	}
	if bound, ok := m.SpaceForWindow(window.ID); ok && bound.PermanentID == snap.PermanentID {
		id := window.ID
		snap.WindowID = &id
		snap.Status = entity.RestoreFinalized
	}
	return snap, nil
}

// HandleWindowCreated classifies a host window-creation event. A window
// claimed by a restore intent becomes the archived space again and true is
// returned; any other window becomes a new space. Events for a window that
// is already bound are ignored.
func (m *Manager) HandleWindowCreated(ctx context.Context, window entity.Window) (restored bool, err error) {
	ctx = logging.WithWindowID(ctx, int64(window.ID))
	log := logging.FromContext(ctx)

	id := entity.SpaceIDForWindow(window.ID)
	release, err := m.lock(ctx, id)
	if err != nil {
		return false, err
	}
	defer release()

	if _, ok := m.current(id); ok {
		log.Debug().Msg("window already bound")
		return false, nil
	}

	snap, claimed := m.registry.ClaimPendingWindow(ctx, window)
	if !claimed {
		_, err := m.createLocked(ctx, window)
		return false, err
	}

	// Window keys sort before archive keys, so taking the archive lock second
	// keeps the global order.
	releaseArchive, err := m.lock(ctx, snap.ClosedSpaceID)
	if err != nil {
		m.registry.Fail(ctx, snap.ClosedSpaceID, err.Error())
		return false, err
	}
	defer releaseArchive()

	archived, ok := m.current(snap.ClosedSpaceID)
	if !ok || archived.IsActive {
		m.registry.Fail(ctx, snap.ClosedSpaceID, "archived space disappeared")
		_, err := m.createLocked(ctx, window)
		return false, err
	}

	now := m.now()
	patch := entity.BoundTo(window.ID, now)
	if urls := window.URLs(); len(urls) > 0 {
		patch.URLs = urls
	}
	next := archived.Apply(patch, now)
	m.put(archived.ID, next)

	pctx, cancel := m.persistContext(ctx)
	defer cancel()
	if err := m.repo.ReplaceSpace(pctx, archived.ID, next, archived.Version); err != nil {
		m.put(next.ID, archived)
		m.registry.Fail(ctx, snap.ClosedSpaceID, err.Error())
		observe("restore_finalize", err)
		return true, storageErr("restore space", err)
	}
	m.registry.Finalize(ctx, window.ID)
	observe("restore_finalize", nil)

	log.Info().
		Str("space_id", string(next.ID)).
		Str("archived_id", string(archived.ID)).
		Str("name", next.Name).
		Msg("space restored")
	m.publish(ctx, entity.SpaceLifecyclePayload{Event: entity.UpdateSpaceRestored, Space: next, PreviousID: archived.ID}, entity.PriorityHigh)
	return true, nil
}

// HandleWindowRemoved archives the space bound to a closed window. Unknown
// windows are ignored.
func (m *Manager) HandleWindowRemoved(ctx context.Context, windowID entity.WindowID) error {
	if _, ok := m.SpaceForWindow(windowID); !ok {
		if snap, attached := m.registry.AttachedTo(windowID); attached {
			m.registry.Fail(ctx, snap.ClosedSpaceID, "window removed before restore finalized")
		}
		return nil
	}
	_, err := m.CloseSpace(ctx, windowID)
	return err
}

// ListenTo routes host lifecycle events into HandleWindowCreated and
// HandleWindowRemoved. Errors are logged; the host has no one to return them to.
func (m *Manager) ListenTo(src port.WindowEventSource) {
	src.OnWindowCreated(func(ctx context.Context, window entity.Window) {
		if _, err := m.HandleWindowCreated(ctx, window); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Int64("window_id", int64(window.ID)).Msg("window created event failed")
		}
	})
	src.OnWindowRemoved(func(ctx context.Context, windowID entity.WindowID) {
		if err := m.HandleWindowRemoved(ctx, windowID); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Int64("window_id", int64(windowID)).Msg("window removed event failed")
		}
	})
}
