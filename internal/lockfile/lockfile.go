package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrAlreadyLocked is returned when another process holds the lock.
var ErrAlreadyLocked = errors.New("lock already held")

// Lock is an exclusive advisory file lock. It guards against two daemons
// reconciling the same database.
type Lock struct {
	path string
	file *os.File
}

// Acquire takes the lock at path without blocking. The holder's PID is
// written into the file for diagnostics.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		if errors.Is(err, ErrAlreadyLocked) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyLocked, path)
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		unlockFile(file)
		file.Close()
		return nil, fmt.Errorf("failed to truncate lock file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		unlockFile(file)
		file.Close()
		return nil, fmt.Errorf("failed to seek lock file: %w", err)
	}
	if _, err := fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
		unlockFile(file)
		file.Close()
		return nil, fmt.Errorf("failed to write pid: %w", err)
	}

	return &Lock{path: path, file: file}, nil
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	if err := unlockFile(l.file); err != nil {
		l.file.Close()
		l.file = nil
		return fmt.Errorf("failed to release lock: %w", err)
	}

	err := l.file.Close()
	l.file = nil
	return err
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
