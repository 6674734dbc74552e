// Package filelock provides advisory locks that keep two fatfilefinder
// processes from moving files into the same directory at the same time.
package filelock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DirLockName is the lock file created inside a locked directory.
const DirLockName = ".fatfilefinder.lock"

// ErrBusy is returned when another process holds the directory lock.
var ErrBusy = errors.New("directory is locked by another process")

// FileLock wraps a flock file lock for coordinating access to a path.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a lock backed by the file at path.
// The file is created on first TryLock.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// ForDir returns the lock guarding writes into dir.
func ForDir(dir string) *FileLock {
	return NewFileLock(filepath.Join(dir, DirLockName))
}

// Path returns the lock file location.
func (fl *FileLock) Path() string {
	return fl.path
}

// TryLock attempts to acquire the lock without blocking.
// Returns false when another process holds it.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// WithDirLock runs fn while holding the lock for dir. It does not wait: if
// the lock is taken, fn is not run and an error wrapping ErrBusy is returned.
// An unlock failure is returned only when fn itself succeeded.
func WithDirLock(dir string, fn func() error) (err error) {
	lock := ForDir(dir)
	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("%s: %w", lock.Path(), ErrBusy)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}()

	return fn()
}
