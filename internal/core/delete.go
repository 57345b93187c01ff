package core

import (
	"errors"
	"fmt"
	"os"
)

// ErrProtectedPath is returned when a deletion targets a protected path.
var ErrProtectedPath = errors.New("refusing to delete protected path")

// SafeDelete removes path and everything below it. Protected paths are
// refused. In dryRun mode nothing is touched and only the checks run.
// A path that is already gone is not an error.
func SafeDelete(path string, dryRun bool) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrProtectedPath)
	}
	if IsProtectedPath(path) {
		return fmt.Errorf("%w: %s", ErrProtectedPath, path)
	}
	if dryRun {
		return nil
	}

	// NEVER follow a link: remove the link itself, not what it points to.
	info, err := os.Lstat(LongPath(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return os.Remove(LongPath(path))
	}
	return os.RemoveAll(LongPath(path))
}
