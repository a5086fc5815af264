package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument rejects a call before it has any effect.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSpaceNotFound is an InvalidArgument for unknown space ids.
	ErrSpaceNotFound = fmt.Errorf("%w: space not found", ErrInvalidArgument)
	// ErrVersionConflict means the persisted record changed under the caller.
	ErrVersionConflict = errors.New("version conflict")
	// ErrStorageFailure means the persistence call itself errored.
	ErrStorageFailure = errors.New("storage failure")
	// ErrLockTimeout means the per-space lock could not be acquired in time.
	ErrLockTimeout = errors.New("lock timeout")
)

// VersionConflictError carries the versions involved in a conflict.
type VersionConflictError struct {
	SpaceID  SpaceID
	Expected int64
	Current  int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict on space %s: expected %d, found %d", e.SpaceID, e.Expected, e.Current)
}

func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// StorageError wraps a persistence error as a StorageFailure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// LockTimeoutError names the space whose lock timed out.
type LockTimeoutError struct {
	SpaceID SpaceID
}

func (e *LockTimeoutError) Error() string {
	return fmt.Sprintf("lock timeout on space %s", e.SpaceID)
}

func (e *LockTimeoutError) Is(target error) bool {
	return target == ErrLockTimeout
}

// IsRetryable reports whether the caller may retry the same call.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrLockTimeout) || errors.Is(err, ErrVersionConflict)
}
