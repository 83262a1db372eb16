package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"subcast/internal/config"
)

// ErrLocked indicates another subcast process holds the session lock.
var ErrLocked = errors.New("another subcast process is using the session database")

// AcquireLock takes the single-writer lock guarding the session database.
// The caller must invoke the returned release function when done.
func AcquireLock(cfg *config.Config) (func(), error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "sessions.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() { _ = lock.Unlock() }, nil
}
