package recordstore

import (
	"fmt"
	"os"
	"syscall"
)

// withFileLock executes fn while holding an exclusive flock on a sidecar
// ".lock" file next to path. The lock file is left in place between calls so
// there is no delete/recreate race between competing writers.
func withFileLock(path string, fn func() error) error {
	lockPath := path + ".lock"

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("opening lock file: %w", err)
	}
	defer f.Close()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("flock: %w", err)
	}
	defer func() { _ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN) }()

	return fn()
}
