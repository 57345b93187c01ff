package project

import (
	"strings"

	"github.com/IGLOU-EU/go-wildcard"
)

// MatchName reports whether an entry name matches pattern. Patterns without
// '*' or '?' must match exactly. The literal text before the first and after
// the last wildcard is compared verbatim, so ".*" only matches hidden names
// and "*.csproj" only names ending in ".csproj".
func MatchName(pattern, name string) bool {
	first := strings.IndexAny(pattern, "*?")
	if first < 0 {
		return pattern == name
	}
	last := strings.LastIndexAny(pattern, "*?")
	prefix, suffix := pattern[:first], pattern[last+1:]
	if len(name) < len(prefix)+len(suffix) ||
		!strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
		return false
	}
	return wildcard.Match(pattern, name)
}

// MatchAnyPattern reports whether name matches any of patterns.
func MatchAnyPattern(patterns []string, name string) bool {
	for _, p := range patterns {
		if MatchName(p, name) {
			return true
		}
	}
	return false
}
