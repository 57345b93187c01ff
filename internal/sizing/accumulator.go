// Package sizing measures the on-disk footprint of directory subtrees.
package sizing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
)

// defaultMemoSize bounds the number of remembered measurements.
const defaultMemoSize = 4096

// Accumulator sums apparent file sizes below a path. It is safe for
// concurrent use; each measured path is remembered so the same subtree is
// never traversed twice within a process.
type Accumulator struct {
	memo *lru.Cache[string, uint64]
}

// NewAccumulator creates an accumulator remembering up to memoSize
// measurements. memoSize <= 0 selects the default.
func NewAccumulator(memoSize int) *Accumulator {
	if memoSize <= 0 {
		memoSize = defaultMemoSize
	}
	memo, err := lru.New[string, uint64](memoSize)
	if err != nil {
		// Only returned for a non-positive size, which is excluded above.
		panic(err)
	}
	return &Accumulator{memo: memo}
}

// Measure returns the total apparent size of all regular files under path.
// It never fails: unreadable entries contribute 0, and symbolic links and
// reparse points are zero-size leaves that are never followed.
func (a *Accumulator) Measure(path string) uint64 {
	path = filepath.Clean(path)
	if size, ok := a.memo.Get(path); ok {
		return size
	}
	size := measure(path)
	a.memo.Add(path, size)
	return size
}

// Forget drops the remembered measurement for path, e.g. after deletion.
func (a *Accumulator) Forget(path string) {
	a.memo.Remove(filepath.Clean(path))
}

func measure(root string) uint64 {
	var total uint64
	walkRoot := core.LongPath(root)
	_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied or vanished: skip, don't fail.
			if d != nil && d.IsDir() && path != walkRoot {
				return fs.SkipDir
			}
			return nil
		}

		mode := d.Type()
		switch {
		case mode&fs.ModeSymlink != 0:
			return nil
		case d.IsDir():
			// NEVER descend into junctions: infinite recursion risk.
			if path != walkRoot && IsReparsePoint(path) {
				return fs.SkipDir
			}
			return nil
		case !mode.IsRegular():
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += uint64(info.Size())
		return nil
	})
	return total
}

// Exists reports whether path is present, without following a final link.
// Only a missing path is reported as absent; any other failure to stat it
// is returned.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(core.LongPath(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
