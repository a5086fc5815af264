// Package sqlite provides the SQLite implementation of the space repository.
//
// # Lazy Repository
//
// LazySpaceRepository defers opening the database until the first call, so it
// can be wired into the CLI container unconditionally. It implements the same
// interface as the eager repository and is a drop-in replacement.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/spacesync/internal/application/port"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/domain/repository"
)

// LazySpaceRepository wraps a space repository with lazy database initialization.
type LazySpaceRepository struct {
	provider port.DatabaseProvider
	repo     repository.SpaceRepository
	once     sync.Once
	initErr  error
}

// NewLazySpaceRepository creates a lazy-loading space repository.
func NewLazySpaceRepository(provider port.DatabaseProvider) repository.SpaceRepository {
	return &LazySpaceRepository{provider: provider}
}

func (r *LazySpaceRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSpaceRepository(db)
	})
	return r.initErr
}

func (r *LazySpaceRepository) LoadSpaces(ctx context.Context) (map[entity.SpaceID]entity.Space, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.LoadSpaces(ctx)
}

func (r *LazySpaceRepository) SaveSpaces(ctx context.Context, spaces map[entity.SpaceID]entity.Space) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveSpaces(ctx, spaces)
}

func (r *LazySpaceRepository) LoadClosedSpaces(ctx context.Context) (map[entity.SpaceID]entity.Space, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.LoadClosedSpaces(ctx)
}

func (r *LazySpaceRepository) SaveClosedSpaces(ctx context.Context, spaces map[entity.SpaceID]entity.Space) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveClosedSpaces(ctx, spaces)
}

func (r *LazySpaceRepository) GetSpace(ctx context.Context, id entity.SpaceID) (*entity.Space, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetSpace(ctx, id)
}

func (r *LazySpaceRepository) SaveSpace(ctx context.Context, space entity.Space, expectedVersion int64) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveSpace(ctx, space, expectedVersion)
}

func (r *LazySpaceRepository) ReplaceSpace(
	ctx context.Context, oldID entity.SpaceID, space entity.Space, expectedVersion int64,
) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.ReplaceSpace(ctx, oldID, space, expectedVersion)
}

func (r *LazySpaceRepository) DeleteSpace(ctx context.Context, id entity.SpaceID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteSpace(ctx, id)
}

func (r *LazySpaceRepository) LoadTabs(ctx context.Context, spaceID entity.SpaceID) ([]entity.TabRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.LoadTabs(ctx, spaceID)
}

func (r *LazySpaceRepository) SaveTabs(ctx context.Context, spaceID entity.SpaceID, tabs []entity.TabRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveTabs(ctx, spaceID, tabs)
}

func (r *LazySpaceRepository) DeleteTabs(ctx context.Context, spaceID entity.SpaceID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteTabs(ctx, spaceID)
}

func (r *LazySpaceRepository) GetMetadata(ctx context.Context, key string) (string, bool, error) {
	if err := r.init(ctx); err != nil {
		return "", false, err
	}
	return r.repo.GetMetadata(ctx, key)
}

func (r *LazySpaceRepository) SetMetadata(ctx context.Context, key, value string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SetMetadata(ctx, key, value)
}

func (r *LazySpaceRepository) Export(ctx context.Context) ([]byte, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Export(ctx)
}

func (r *LazySpaceRepository) Import(ctx context.Context, data []byte) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Import(ctx, data)
}

func (r *LazySpaceRepository) Clear(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Clear(ctx)
}
