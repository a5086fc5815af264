package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/domain/repository"
	"github.com/bnema/spacesync/internal/logging"
)

type spaceRepo struct {
	db      *sql.DB
	queries *queries
	now     func() time.Time
}

// NewSpaceRepository creates a new SQLite-backed space repository.
func NewSpaceRepository(db *sql.DB) repository.SpaceRepository {
	return &spaceRepo{db: db, queries: newQueries(db), now: time.Now}
}

// inTx runs fn inside a transaction, rolling back on any error.
func (r *spaceRepo) inTx(ctx context.Context, fn func(q *queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(r.queries.withTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *spaceRepo) LoadSpaces(ctx context.Context) (map[entity.SpaceID]entity.Space, error) {
	return r.queries.listSpaces(ctx, tableActive)
}

func (r *spaceRepo) LoadClosedSpaces(ctx context.Context) (map[entity.SpaceID]entity.Space, error) {
	return r.queries.listSpaces(ctx, tableClosed)
}

func (r *spaceRepo) SaveSpaces(ctx context.Context, spaces map[entity.SpaceID]entity.Space) error {
	return r.replaceTable(ctx, tableActive, spaces, true)
}

func (r *spaceRepo) SaveClosedSpaces(ctx context.Context, spaces map[entity.SpaceID]entity.Space) error {
	return r.replaceTable(ctx, tableClosed, spaces, false)
}

func (r *spaceRepo) replaceTable(ctx context.Context, table string, spaces map[entity.SpaceID]entity.Space, active bool) error {
	logging.FromContext(ctx).Debug().Str("table", table).Int("count", len(spaces)).Msg("replacing space store")

	return r.inTx(ctx, func(q *queries) error {
		if err := q.deleteAllSpaces(ctx, table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
		for id, s := range spaces {
			s.ID = id
			s.IsActive = active
			if err := q.upsertSpace(ctx, s); err != nil {
				return fmt.Errorf("save space %s: %w", id, err)
			}
		}
		return nil
	})
}

func (r *spaceRepo) GetSpace(ctx context.Context, id entity.SpaceID) (*entity.Space, error) {
	return r.queries.findSpace(ctx, id)
}

func checkVersion(ctx context.Context, q *queries, id entity.SpaceID, expected int64) error {
	if expected <= 0 {
		return nil
	}
	current, err := q.findSpace(ctx, id)
	if err != nil {
		return fmt.Errorf("read space %s: %w", id, err)
	}
	var version int64
	if current != nil {
		version = current.Version
	}
	if version != expected {
		return &entity.VersionConflictError{SpaceID: id, Expected: expected, Current: version}
	}
	return nil
}

func (r *spaceRepo) SaveSpace(ctx context.Context, space entity.Space, expectedVersion int64) error {
	logging.FromContext(ctx).Debug().
		Str("space_id", string(space.ID)).
		Int64("version", space.Version).
		Int64("expected_version", expectedVersion).
		Msg("saving space")

	table := tableFor(space)
	return r.inTx(ctx, func(q *queries) error {
		if err := checkVersion(ctx, q, space.ID, expectedVersion); err != nil {
			return err
		}
		if err := q.deleteSpaceFrom(ctx, otherTable(table), space.ID); err != nil {
			return fmt.Errorf("delete stale space %s: %w", space.ID, err)
		}
		if err := q.upsertSpace(ctx, space); err != nil {
			return fmt.Errorf("save space %s: %w", space.ID, err)
		}
		return nil
	})
}

func (r *spaceRepo) ReplaceSpace(ctx context.Context, oldID entity.SpaceID, space entity.Space, expectedVersion int64) error {
	logging.FromContext(ctx).Debug().
		Str("old_id", string(oldID)).
		Str("new_id", string(space.ID)).
		Int64("expected_version", expectedVersion).
		Msg("replacing space")

	table := tableFor(space)
	return r.inTx(ctx, func(q *queries) error {
		if err := checkVersion(ctx, q, oldID, expectedVersion); err != nil {
			return err
		}
		for _, t := range []string{tableActive, tableClosed} {
			if err := q.deleteSpaceFrom(ctx, t, oldID); err != nil {
				return fmt.Errorf("delete space %s: %w", oldID, err)
			}
		}
		if err := q.deleteSpaceFrom(ctx, otherTable(table), space.ID); err != nil {
			return fmt.Errorf("delete stale space %s: %w", space.ID, err)
		}
		if err := q.upsertSpace(ctx, space); err != nil {
			return fmt.Errorf("save space %s: %w", space.ID, err)
		}
		if oldID == space.ID {
			return nil
		}
		if err := q.deleteTabs(ctx, space.ID); err != nil {
			return fmt.Errorf("clear tabs of %s: %w", space.ID, err)
		}
		if err := q.moveTabs(ctx, oldID, space.ID); err != nil {
			return fmt.Errorf("move tabs %s -> %s: %w", oldID, space.ID, err)
		}
		return nil
	})
}

func (r *spaceRepo) DeleteSpace(ctx context.Context, id entity.SpaceID) error {
	logging.FromContext(ctx).Debug().Str("space_id", string(id)).Msg("deleting space")

	return r.inTx(ctx, func(q *queries) error {
		for _, t := range []string{tableActive, tableClosed} {
			if err := q.deleteSpaceFrom(ctx, t, id); err != nil {
				return fmt.Errorf("delete space %s: %w", id, err)
			}
		}
		return q.deleteTabs(ctx, id)
	})
}

func (r *spaceRepo) LoadTabs(ctx context.Context, spaceID entity.SpaceID) ([]entity.TabRecord, error) {
	return r.queries.listTabs(ctx, spaceID)
}

func (r *spaceRepo) SaveTabs(ctx context.Context, spaceID entity.SpaceID, tabs []entity.TabRecord) error {
	return r.inTx(ctx, func(q *queries) error {
		if err := q.deleteTabs(ctx, spaceID); err != nil {
			return fmt.Errorf("clear tabs of %s: %w", spaceID, err)
		}
		for i, tab := range tabs {
			tab.SpaceID = spaceID
			tab.Position = i
			if err := q.insertTab(ctx, tab); err != nil {
				return fmt.Errorf("save tab %s: %w", tab.ID, err)
			}
		}
		return nil
	})
}

func (r *spaceRepo) DeleteTabs(ctx context.Context, spaceID entity.SpaceID) error {
	return r.queries.deleteTabs(ctx, spaceID)
}

func (r *spaceRepo) GetMetadata(ctx context.Context, key string) (string, bool, error) {
	return r.queries.getMetadata(ctx, key)
}

func (r *spaceRepo) SetMetadata(ctx context.Context, key, value string) error {
	return r.queries.setMetadata(ctx, key, value, r.now())
}

func (r *spaceRepo) Export(ctx context.Context) ([]byte, error) {
	backup := entity.Backup{Version: entity.BackupVersion, ExportedAt: r.now().UTC()}

	active, err := r.queries.listSpaces(ctx, tableActive)
	if err != nil {
		return nil, fmt.Errorf("load spaces: %w", err)
	}
	closed, err := r.queries.listSpaces(ctx, tableClosed)
	if err != nil {
		return nil, fmt.Errorf("load closed spaces: %w", err)
	}
	tabs, err := r.queries.listAllTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tabs: %w", err)
	}

	backup.Spaces = sortedSpaces(active)
	backup.Closed = sortedSpaces(closed)
	backup.Tabs = tabs
	if backup.Tabs == nil {
		backup.Tabs = []entity.TabRecord{}
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	logging.FromContext(ctx).Info().Int("spaces", backup.SpaceCount()).Int("tabs", len(tabs)).Msg("state exported")
	return data, nil
}

func (r *spaceRepo) Import(ctx context.Context, data []byte) error {
	var backup entity.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("%w: decode backup: %v", entity.ErrInvalidArgument, err)
	}
	if backup.Version < 1 || backup.Version > entity.BackupVersion {
		return fmt.Errorf("%w: unsupported backup version %d", entity.ErrInvalidArgument, backup.Version)
	}

	err := r.inTx(ctx, func(q *queries) error {
		if err := q.clear(ctx); err != nil {
			return fmt.Errorf("clear state: %w", err)
		}
		for _, s := range backup.Spaces {
			s.IsActive = true
			if err := q.upsertSpace(ctx, s); err != nil {
				return fmt.Errorf("import space %s: %w", s.ID, err)
			}
		}
		for _, s := range backup.Closed {
			s.IsActive = false
			if err := q.upsertSpace(ctx, s); err != nil {
				return fmt.Errorf("import closed space %s: %w", s.ID, err)
			}
		}
		for _, tab := range backup.Tabs {
			if err := q.insertTab(ctx, tab); err != nil {
				return fmt.Errorf("import tab %s: %w", tab.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Int("spaces", backup.SpaceCount()).Int("tabs", len(backup.Tabs)).Msg("state imported")
	return nil
}

func (r *spaceRepo) Clear(ctx context.Context) error {
	logging.FromContext(ctx).Warn().Msg("clearing all persisted state")
	return r.inTx(ctx, func(q *queries) error {
		return q.clear(ctx)
	})
}

func sortedSpaces(m map[entity.SpaceID]entity.Space) []entity.Space {
	out := make([]entity.Space, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	entity.SortSpaces(out)
	return out
}
