package state

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/logging"
)

// RenameInput names a space. ExpectedVersion is optional: when set, the call
// fails with a version conflict unless it matches the in-memory version.
type RenameInput struct {
	SpaceID         entity.SpaceID
	Name            string
	ExpectedVersion int64
}

// CreateSpace binds a live window to a new space. A window already bound
// returns its existing space.
func (m *Manager) CreateSpace(ctx context.Context, windowID entity.WindowID) (space entity.Space, err error) {
	defer func() { observe("create", err) }()

	id := entity.SpaceIDForWindow(windowID)
	release, err := m.lock(ctx, id)
	if err != nil {
		return entity.Space{}, err
	}
	defer release()

	if existing, ok := m.current(id); ok {
		return existing, nil
	}
	return m.createLocked(ctx, entity.Window{ID: windowID, Type: m.cfg.DefaultWindowType})
}

// createLocked expects the window's lock to be held.
func (m *Manager) createLocked(ctx context.Context, window entity.Window) (entity.Space, error) {
	log := logging.FromContext(ctx)

	tabs := window.Tabs
	if len(tabs) == 0 && m.tabs != nil {
		hctx, cancel := m.hostContext(ctx)
		listed, err := m.tabs.ListTabs(hctx, window.ID)
		cancel()
		if err != nil {
			log.Warn().Err(err).Int64("window_id", int64(window.ID)).Msg("could not list tabs for new space")
		} else {
			tabs = listed
		}
	}

	space := entity.NewSpace(window.ID, m.newID(), entity.Window{Tabs: tabs}.URLs(), m.now())
	m.put("", space)

	pctx, cancel := m.persistContext(ctx)
	defer cancel()
	if err := m.repo.SaveSpace(pctx, space, 0); err != nil {
		m.remove(space.ID)
		return entity.Space{}, storageErr("save space", err)
	}
	m.saveTabs(pctx, space.ID, tabs)

	log.Info().
		Str("space_id", string(space.ID)).
		Str("permanent_id", space.PermanentID).
		Int("url_count", len(space.URLs)).
		Msg("space created")
	m.publish(ctx, entity.SpaceLifecyclePayload{Event: entity.UpdateSpaceCreated, Space: space}, entity.PriorityHigh)
	return space, nil
}

// SetSpaceName renames a space without a caller-supplied version.
func (m *Manager) SetSpaceName(ctx context.Context, id entity.SpaceID, name string) (entity.Space, error) {
	return m.RenameSpace(ctx, RenameInput{SpaceID: id, Name: name})
}

// RenameSpace applies an explicit user rename. The persisted record must
// still carry the version this call started from; otherwise memory adopts
// the persisted record and the call fails with a version conflict. Nothing
// is retried here.
func (m *Manager) RenameSpace(ctx context.Context, in RenameInput) (space entity.Space, err error) {
	defer func() { observe("rename", err) }()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Space{}, fmt.Errorf("%w: name must not be empty", entity.ErrInvalidArgument)
	}
	if in.SpaceID == "" {
		return entity.Space{}, fmt.Errorf("%w: space id required", entity.ErrInvalidArgument)
	}

	ctx = logging.WithSpaceID(ctx, string(in.SpaceID))
	log := logging.FromContext(ctx)

	release, err := m.lock(ctx, in.SpaceID)
	if err != nil {
		return entity.Space{}, err
	}
	defer release()

	start, ok := m.current(in.SpaceID)
	if !ok {
		return entity.Space{}, fmt.Errorf("rename space %s: %w", in.SpaceID, entity.ErrSpaceNotFound)
	}
	if in.ExpectedVersion > 0 && in.ExpectedVersion != start.Version {
		return entity.Space{}, &entity.VersionConflictError{SpaceID: start.ID, Expected: in.ExpectedVersion, Current: start.Version}
	}

	pctx, cancel := m.persistContext(ctx)
	defer cancel()

	persisted, err := m.repo.GetSpace(pctx, start.ID)
	if err != nil {
		return entity.Space{}, storageErr("get space", err)
	}
	if persisted != nil && persisted.Version != start.Version {
		m.put(start.ID, *persisted)
		log.Warn().
			Int64("expected", start.Version).
			Int64("found", persisted.Version).
			Msg("rename lost to a newer persisted record")
		return entity.Space{}, &entity.VersionConflictError{SpaceID: start.ID, Expected: start.Version, Current: persisted.Version}
	}

	next := start.Apply(entity.Renamed(name), m.now())
	m.put(start.ID, next)

	if err := m.repo.SaveSpace(pctx, next, start.Version); err != nil {
		var conflict *entity.VersionConflictError
		if errors.As(err, &conflict) {
			m.adoptPersisted(pctx, start)
			return entity.Space{}, conflict
		}
		m.put(next.ID, start)
		return entity.Space{}, storageErr("save space", err)
	}

	log.Info().Str("name", next.Name).Int64("version", next.Version).Msg("space renamed")
	m.publish(ctx, entity.SpaceUpdatedPayload{
		SpaceID:     next.ID,
		PermanentID: next.PermanentID,
		Changes:     entity.SpaceChanges{Name: &next.Name},
		Version:     next.Version,
	}, entity.PriorityCritical)
	return next.Clone(), nil
}

// adoptPersisted replaces the in-memory record with whatever storage holds
// now, or falls back to prev if it cannot be read.
func (m *Manager) adoptPersisted(ctx context.Context, prev entity.Space) {
	fresh, err := m.repo.GetSpace(ctx, prev.ID)
	if err != nil || fresh == nil {
		m.put(prev.ID, prev)
		return
	}
	m.put(prev.ID, *fresh)
}

// CloseSpace archives the space bound to windowID. Identity fields and tabs
// are kept.
func (m *Manager) CloseSpace(ctx context.Context, windowID entity.WindowID) (space entity.Space, err error) {
	defer func() { observe("close", err) }()

	id := entity.SpaceIDForWindow(windowID)
	seen, ok := m.current(id)
	if !ok {
		return entity.Space{}, fmt.Errorf("close window %d: %w", windowID, entity.ErrSpaceNotFound)
	}

	release, err := m.lock(ctx, id, entity.ArchivedSpaceID(seen.PermanentID))
	if err != nil {
		return entity.Space{}, err
	}
	defer release()

	start, ok := m.current(id)
	if !ok || start.PermanentID != seen.PermanentID {
		return entity.Space{}, fmt.Errorf("close window %d: %w", windowID, entity.ErrSpaceNotFound)
	}

	now := m.now()
	patch := start.Archived()
	patch.LastUsed = &now
	next := start.Apply(patch, now)
	m.put(start.ID, next)

	pctx, cancel := m.persistContext(ctx)
	defer cancel()
	if err := m.repo.ReplaceSpace(pctx, start.ID, next, start.Version); err != nil {
		m.put(next.ID, start)
		return entity.Space{}, storageErr("archive space", err)
	}

	if snap, ok := m.registry.AttachedTo(windowID); ok {
		m.registry.Fail(ctx, snap.ClosedSpaceID, "window closed before restore finalized")
	}

	logging.FromContext(ctx).Info().
		Str("space_id", string(start.ID)).
		Str("archived_id", string(next.ID)).
		Msg("space archived")
	m.publish(ctx, entity.SpaceLifecyclePayload{Event: entity.UpdateSpaceClosed, Space: next, PreviousID: start.ID}, entity.PriorityHigh)
	return next.Clone(), nil
}

// DeleteSpace permanently removes an archived space and its tabs.
func (m *Manager) DeleteSpace(ctx context.Context, id entity.SpaceID) (err error) {
	defer func() { observe("delete", err) }()

	release, err := m.lock(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	start, ok := m.current(id)
	if !ok {
		return fmt.Errorf("delete space %s: %w", id, entity.ErrSpaceNotFound)
	}
	if start.IsActive {
		return fmt.Errorf("%w: space %s is bound to a window", entity.ErrInvalidArgument, id)
	}

	m.remove(id)
	pctx, cancel := m.persistContext(ctx)
	defer cancel()
	if err := m.repo.DeleteSpace(pctx, id); err != nil {
		m.put("", start)
		return storageErr("delete space", err)
	}

	m.registry.Cancel(ctx, id)
	logging.FromContext(ctx).Info().Str("space_id", string(id)).Msg("space deleted")
	m.publish(ctx, entity.SpaceLifecyclePayload{Event: entity.UpdateSpaceDeleted, Space: start}, entity.PriorityHigh)
	return nil
}

// RekeySpace rebinds an active space to a different window id, as happens
// when the host reassigns ids across a restart. Identity fields are kept.
func (m *Manager) RekeySpace(ctx context.Context, oldID entity.SpaceID, newWindowID entity.WindowID) (space entity.Space, err error) {
	defer func() { observe("rekey", err) }()

	newID := entity.SpaceIDForWindow(newWindowID)
	release, err := m.lock(ctx, oldID, newID)
	if err != nil {
		return entity.Space{}, err
	}
	defer release()

	start, ok := m.current(oldID)
	if !ok {
		return entity.Space{}, fmt.Errorf("rekey space %s: %w", oldID, entity.ErrSpaceNotFound)
	}
	if !start.IsActive {
		return entity.Space{}, fmt.Errorf("%w: space %s is archived", entity.ErrInvalidArgument, oldID)
	}
	if oldID == newID {
		return start, nil
	}
	if m.HasSpace(newID) {
		return entity.Space{}, fmt.Errorf("%w: window %d is already bound", entity.ErrInvalidArgument, newWindowID)
	}

	now := m.now()
	next := start.Apply(entity.BoundTo(newWindowID, now), now)
	m.put(start.ID, next)

	pctx, cancel := m.persistContext(ctx)
	defer cancel()
	if err := m.repo.ReplaceSpace(pctx, start.ID, next, start.Version); err != nil {
		m.put(next.ID, start)
		return entity.Space{}, storageErr("rekey space", err)
	}

	logging.FromContext(ctx).Info().
		Str("old_id", string(oldID)).
		Str("new_id", string(newID)).
		Msg("space rekeyed")
	m.publish(ctx, entity.SpaceLifecyclePayload{Event: entity.UpdateSpaceRekeyed, Space: next, PreviousID: oldID}, entity.PriorityHigh)
	return next.Clone(), nil
}

// RefreshSpaceTabs re-reads the tab URLs of a bound window. An unchanged
// list is a no-op.
func (m *Manager) RefreshSpaceTabs(ctx context.Context, windowID entity.WindowID) (space entity.Space, err error) {
	defer func() { observe("refresh_tabs", err) }()

	id := entity.SpaceIDForWindow(windowID)
	release, err := m.lock(ctx, id)
	if err != nil {
		return entity.Space{}, err
	}
	defer release()

	start, ok := m.current(id)
	if !ok {
		return entity.Space{}, fmt.Errorf("refresh window %d: %w", windowID, entity.ErrSpaceNotFound)
	}

	hctx, hcancel := m.hostContext(ctx)
	tabs, err := m.tabs.ListTabs(hctx, windowID)
	hcancel()
	if err != nil {
		return entity.Space{}, fmt.Errorf("list tabs: %w", err)
	}

	urls := entity.Window{Tabs: tabs}.URLs()
	if slices.Equal(urls, start.URLs) {
		return start, nil
	}

	now := m.now()
	next := start.Apply(entity.SpacePatch{URLs: urls, LastSync: &now}, now)
	m.put(start.ID, next)

	pctx, cancel := m.persistContext(ctx)
	defer cancel()
	if err := m.repo.SaveSpace(pctx, next, start.Version); err != nil {
		m.put(next.ID, start)
		return entity.Space{}, storageErr("save space", err)
	}
	m.saveTabs(pctx, next.ID, tabs)

	m.publish(ctx, entity.TabsChangedPayload{
		SpaceID:     next.ID,
		PermanentID: next.PermanentID,
		URLs:        slices.Clone(next.URLs),
		Version:     next.Version,
	}, entity.PriorityNormal)
	return next.Clone(), nil
}

// saveTabs persists tab records. Tab rows mirror Space.URLs, so a failure is
// logged rather than rolled back.
func (m *Manager) saveTabs(ctx context.Context, id entity.SpaceID, tabs []entity.Tab) {
	records := entity.TabRecordsFromTabs(id, tabs, m.newID)
	if err := m.repo.SaveTabs(ctx, id, records); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("space_id", string(id)).Msg("failed to save tab records")
	}
}
