package sizing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
)

// LinkedAncestor returns the first directory strictly between root and path
// that is a symbolic link or reparse point, or "" when the route is plain.
// The final element of path is not inspected: a link there is removed as a
// link and never followed.
func LinkedAncestor(root, path string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", path, root)
	}

	parts := strings.Split(rel, string(filepath.Separator))
	cur := filepath.Clean(root)
	for _, part := range parts[:len(parts)-1] {
		cur = filepath.Join(cur, part)
		info, err := os.Lstat(core.LongPath(cur))
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink != 0 || IsReparsePoint(cur) {
			return cur, nil
		}
	}
	return "", nil
}
