// Package pidlock enforces process exclusivity through an advisory lock on
// a pid file. A second daemon instance fails to acquire the lock and exits
// instead of fighting the first over the same log files.
package pidlock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
)

// DefaultDir is where pid files live unless the caller overrides it.
const DefaultDir = "/tmp/run"

// Lock is one held process lock.
type Lock struct {
	fl   *flock.Flock
	path string
}

// Acquire takes an exclusive lock on <dir>/<component>.pid and records the
// current pid in it. It fails immediately (no blocking) when another
// process holds the lock.
func Acquire(dir, component string) (*Lock, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return nil, fmt.Errorf("pidlock: create lock dir: %w", err)
	}

	path := filepath.Join(dir, component+".pid")
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("pidlock: lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("pidlock: %s is held by another process", path)
	}

	// The pid content is diagnostic only; the flock is the actual mutex.
	pid := strconv.Itoa(os.Getpid()) + "\n"
	if err := os.WriteFile(path, []byte(pid), 0o600); err != nil {
		_ = fl.Unlock()
		return nil, fmt.Errorf("pidlock: write %s: %w", path, err)
	}

	return &Lock{fl: fl, path: path}, nil
}

// Path returns the pid file path backing the lock.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock and removes the pid file.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return fmt.Errorf("pidlock: unlock %s: %w", l.path, err)
	}
	_ = os.Remove(l.path)
	return nil
}
