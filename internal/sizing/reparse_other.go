//go:build !windows

package sizing

// IsReparsePoint always reports false: outside Windows, links show up as
// fs.ModeSymlink and are handled by the caller.
func IsReparsePoint(string) bool { return false }
