package clean

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
	"github.com/lakshaymaurya-felt/devsweep/internal/sizing"
)

// checkTarget refuses any target that is not strictly inside its project
// root, any protected path, and any target whose parent directories include
// a link.
func checkTarget(p project.ScannedProject, t project.CleanTarget) error {
	if !filepath.IsAbs(t.Path) || !filepath.IsAbs(p.Path) {
		return fmt.Errorf("%s: path %q is not absolute", t.Name, t.Path)
	}
	rel, err := filepath.Rel(filepath.Clean(p.Path), filepath.Clean(t.Path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s: %s is outside project %s", t.Name, t.Path, p.Path)
	}
	if core.IsProtectedPath(t.Path) {
		return fmt.Errorf("%s: %w: %s", t.Name, core.ErrProtectedPath, t.Path)
	}
	link, err := sizing.LinkedAncestor(p.Path, t.Path)
	if err != nil {
		return fmt.Errorf("%s: cannot verify %s: %w", t.Name, t.Path, err)
	}
	if link != "" {
		return fmt.Errorf("%s: %s is reached through link %s", t.Name, t.Path, link)
	}
	return nil
}
