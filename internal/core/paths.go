package core

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// LongPath adds the \\?\ prefix for paths exceeding MAX_PATH on Windows.
// Other platforms get the path back unchanged.
func LongPath(path string) string {
	if runtime.GOOS != "windows" {
		return path
	}
	if len(path) >= 260 && !strings.HasPrefix(path, `\\?\`) {
		return `\\?\` + filepath.Clean(path)
	}
	return path
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ProtectedPaths returns paths that must NEVER be removed, whatever a rule
// or a config file says: filesystem roots, the user's home and the
// well-known system directories.
func ProtectedPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	if runtime.GOOS == "windows" {
		w := os.Getenv("WINDIR")
		if w == "" {
			w = `C:\Windows`
		}
		paths = append(paths, w, os.Getenv("PROGRAMFILES"), os.Getenv("PROGRAMFILES(X86)"), os.Getenv("PROGRAMDATA"))
	} else {
		paths = append(paths, "/", "/bin", "/boot", "/dev", "/etc", "/lib", "/opt",
			"/proc", "/root", "/sbin", "/sys", "/tmp", "/usr", "/var", "/home", "/Users",
			"/System", "/Library", "/Applications")
	}

	out := paths[:0]
	for _, p := range paths {
		if p != "" {
			out = append(out, filepath.Clean(p))
		}
	}
	return out
}

// IsProtectedPath reports whether path is a volume root or one of
// ProtectedPaths.
func IsProtectedPath(path string) bool {
	clean := filepath.Clean(path)
	if clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return true
	}
	for _, p := range ProtectedPaths() {
		if samePath(clean, p) {
			return true
		}
	}
	return false
}

func samePath(a, b string) bool {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
