package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/spacesync/internal/domain/entity"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries {
	return &queries{db: db}
}

func (q *queries) withTx(tx *sql.Tx) *queries {
	return &queries{db: tx}
}

const (
	tableActive = "spaces"
	tableClosed = "closed_spaces"
)

func tableFor(space entity.Space) string {
	if space.IsActive {
		return tableActive
	}
	return tableClosed
}

func otherTable(table string) string {
	if table == tableActive {
		return tableClosed
	}
	return tableActive
}

const spaceColumns = `id, permanent_id, name, named, urls, created_at, last_modified, last_used, last_sync, version`

// spaceRow mirrors one row of either space table. WindowID is only stored for
// active spaces.
type spaceRow struct {
	ID           string
	PermanentID  string
	WindowID     int64
	Name         string
	Named        bool
	URLs         string
	CreatedAt    int64
	LastModified int64
	LastUsed     int64
	LastSync     int64
	Version      int64
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func rowFromSpace(s entity.Space) (spaceRow, error) {
	urls := s.URLs
	if urls == nil {
		urls = []string{}
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return spaceRow{}, fmt.Errorf("encode urls: %w", err)
	}
	return spaceRow{
		ID:           string(s.ID),
		PermanentID:  s.PermanentID,
		WindowID:     int64(s.WindowID),
		Name:         s.Name,
		Named:        s.Named,
		URLs:         string(encoded),
		CreatedAt:    toMillis(s.CreatedAt),
		LastModified: toMillis(s.LastModified),
		LastUsed:     toMillis(s.LastUsed),
		LastSync:     toMillis(s.LastSync),
		Version:      s.Version,
	}, nil
}

func spaceFromRow(row spaceRow, active bool) (entity.Space, error) {
	var urls []string
	if err := json.Unmarshal([]byte(row.URLs), &urls); err != nil {
		return entity.Space{}, fmt.Errorf("decode urls of space %s: %w", row.ID, err)
	}
	s := entity.Space{
		ID:           entity.SpaceID(row.ID),
		PermanentID:  row.PermanentID,
		Name:         row.Name,
		Named:        row.Named,
		URLs:         urls,
		CreatedAt:    fromMillis(row.CreatedAt),
		LastModified: fromMillis(row.LastModified),
		LastUsed:     fromMillis(row.LastUsed),
		LastSync:     fromMillis(row.LastSync),
		Version:      row.Version,
		IsActive:     active,
	}
	if active {
		s.WindowID = entity.WindowID(row.WindowID)
	}
	return s, nil
}

func (q *queries) listSpaces(ctx context.Context, table string) (map[entity.SpaceID]entity.Space, error) {
	active := table == tableActive
	cols := spaceColumns
	if active {
		cols += ", window_id"
	}
	rows, err := q.db.QueryContext(ctx, "SELECT "+cols+" FROM "+table+" ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[entity.SpaceID]entity.Space)
	for rows.Next() {
		var row spaceRow
		dest := []any{
			&row.ID, &row.PermanentID, &row.Name, &row.Named, &row.URLs,
			&row.CreatedAt, &row.LastModified, &row.LastUsed, &row.LastSync, &row.Version,
		}
		if active {
			dest = append(dest, &row.WindowID)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		s, err := spaceFromRow(row, active)
		if err != nil {
			return nil, err
		}
		out[s.ID] = s
	}
	return out, rows.Err()
}

func (q *queries) getSpace(ctx context.Context, table string, id entity.SpaceID) (*entity.Space, error) {
	active := table == tableActive
	cols := spaceColumns
	if active {
		cols += ", window_id"
	}
	var row spaceRow
	dest := []any{
		&row.ID, &row.PermanentID, &row.Name, &row.Named, &row.URLs,
		&row.CreatedAt, &row.LastModified, &row.LastUsed, &row.LastSync, &row.Version,
	}
	if active {
		dest = append(dest, &row.WindowID)
	}
	err := q.db.QueryRowContext(ctx, "SELECT "+cols+" FROM "+table+" WHERE id = ?", string(id)).Scan(dest...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s, err := spaceFromRow(row, active)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// findSpace looks in the active table first, then the archive.
func (q *queries) findSpace(ctx context.Context, id entity.SpaceID) (*entity.Space, error) {
	s, err := q.getSpace(ctx, tableActive, id)
	if err != nil || s != nil {
		return s, err
	}
	return q.getSpace(ctx, tableClosed, id)
}

func (q *queries) upsertSpace(ctx context.Context, space entity.Space) error {
	row, err := rowFromSpace(space)
	if err != nil {
		return err
	}
	if space.IsActive {
		_, err = q.db.ExecContext(ctx, `INSERT INTO spaces (`+spaceColumns+`, window_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    permanent_id = excluded.permanent_id,
    name = excluded.name,
    named = excluded.named,
    urls = excluded.urls,
    created_at = excluded.created_at,
    last_modified = excluded.last_modified,
    last_used = excluded.last_used,
    last_sync = excluded.last_sync,
    version = excluded.version,
    window_id = excluded.window_id`,
			row.ID, row.PermanentID, row.Name, row.Named, row.URLs,
			row.CreatedAt, row.LastModified, row.LastUsed, row.LastSync, row.Version, row.WindowID)
		return err
	}
	_, err = q.db.ExecContext(ctx, `INSERT INTO closed_spaces (`+spaceColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    permanent_id = excluded.permanent_id,
    name = excluded.name,
    named = excluded.named,
    urls = excluded.urls,
    created_at = excluded.created_at,
    last_modified = excluded.last_modified,
    last_used = excluded.last_used,
    last_sync = excluded.last_sync,
    version = excluded.version`,
		row.ID, row.PermanentID, row.Name, row.Named, row.URLs,
		row.CreatedAt, row.LastModified, row.LastUsed, row.LastSync, row.Version)
	return err
}

func (q *queries) deleteSpaceFrom(ctx context.Context, table string, id entity.SpaceID) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", string(id))
	return err
}

func (q *queries) deleteAllSpaces(ctx context.Context, table string) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM "+table)
	return err
}

func (q *queries) listTabs(ctx context.Context, spaceID entity.SpaceID) ([]entity.TabRecord, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, space_id, position, url, title, pinned FROM tabs WHERE space_id = ? ORDER BY position`,
		string(spaceID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTabs(rows)
}

func (q *queries) listAllTabs(ctx context.Context) ([]entity.TabRecord, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, space_id, position, url, title, pinned FROM tabs ORDER BY space_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTabs(rows)
}

func scanTabs(rows *sql.Rows) ([]entity.TabRecord, error) {
	var out []entity.TabRecord
	for rows.Next() {
		var (
			tab     entity.TabRecord
			spaceID string
		)
		if err := rows.Scan(&tab.ID, &spaceID, &tab.Position, &tab.URL, &tab.Title, &tab.Pinned); err != nil {
			return nil, err
		}
		tab.SpaceID = entity.SpaceID(spaceID)
		out = append(out, tab)
	}
	return out, rows.Err()
}

func (q *queries) insertTab(ctx context.Context, tab entity.TabRecord) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO tabs (id, space_id, position, url, title, pinned) VALUES (?, ?, ?, ?, ?, ?)`,
		tab.ID, string(tab.SpaceID), tab.Position, tab.URL, tab.Title, tab.Pinned)
	return err
}

func (q *queries) deleteTabs(ctx context.Context, spaceID entity.SpaceID) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM tabs WHERE space_id = ?`, string(spaceID))
	return err
}

func (q *queries) moveTabs(ctx context.Context, from, to entity.SpaceID) error {
	_, err := q.db.ExecContext(ctx, `UPDATE tabs SET space_id = ? WHERE space_id = ?`, string(to), string(from))
	return err
}

func (q *queries) getMetadata(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := q.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (q *queries) setMetadata(ctx context.Context, key, value string, now time.Time) error {
	_, err := q.db.ExecContext(ctx, `INSERT INTO metadata (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now.UnixMilli())
	return err
}

func (q *queries) clear(ctx context.Context) error {
	for _, stmt := range []string{"DELETE FROM tabs", "DELETE FROM spaces", "DELETE FROM closed_spaces", "DELETE FROM metadata"} {
		if _, err := q.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
