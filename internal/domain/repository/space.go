package repository

import (
	"context"

	"github.com/bnema/spacesync/internal/domain/entity"
)

// SpaceRepository persists active spaces, archived spaces, per-space tab
// lists, and metadata. Errors returned by implementations are raw; callers
// classify them.
type SpaceRepository interface {
	// LoadSpaces returns the active-space map keyed by space id.
	LoadSpaces(ctx context.Context) (map[entity.SpaceID]entity.Space, error)
	// SaveSpaces replaces the whole active-space store.
	SaveSpaces(ctx context.Context, spaces map[entity.SpaceID]entity.Space) error

	// LoadClosedSpaces returns the archived-space map keyed by space id.
	LoadClosedSpaces(ctx context.Context) (map[entity.SpaceID]entity.Space, error)
	// SaveClosedSpaces replaces the whole archived-space store.
	SaveClosedSpaces(ctx context.Context, spaces map[entity.SpaceID]entity.Space) error

	// GetSpace returns the record stored under id in either store, or nil.
	GetSpace(ctx context.Context, id entity.SpaceID) (*entity.Space, error)

	// SaveSpace writes a space under its own id, in the store matching
	// IsActive. When expectedVersion > 0 the write only succeeds if the stored
	// record still has that version; otherwise it returns a
	// *entity.VersionConflictError.
	SaveSpace(ctx context.Context, space entity.Space, expectedVersion int64) error

	// ReplaceSpace atomically removes the record stored under oldID and writes
	// space under its (possibly different) id and store. Tab records follow.
	// Used for close, restore, and rekey.
	ReplaceSpace(ctx context.Context, oldID entity.SpaceID, space entity.Space, expectedVersion int64) error

	// DeleteSpace removes the record under id from either store and its tabs.
	DeleteSpace(ctx context.Context, id entity.SpaceID) error

	LoadTabs(ctx context.Context, spaceID entity.SpaceID) ([]entity.TabRecord, error)
	SaveTabs(ctx context.Context, spaceID entity.SpaceID, tabs []entity.TabRecord) error
	DeleteTabs(ctx context.Context, spaceID entity.SpaceID) error

	GetMetadata(ctx context.Context, key string) (string, bool, error)
	SetMetadata(ctx context.Context, key, value string) error

	// Export serializes the full persisted state into an opaque blob.
	Export(ctx context.Context) ([]byte, error)
	// Import replaces the full persisted state with a blob produced by Export.
	Import(ctx context.Context, data []byte) error
	// Clear removes all spaces, tabs, and metadata.
	Clear(ctx context.Context) error
}
