package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MatchMode decides how a rule's markers combine.
type MatchMode string

const (
	// MatchAny requires at least one marker to be present.
	MatchAny MatchMode = "any"
	// MatchAll requires every marker to be present.
	MatchAll MatchMode = "all"
)

// TargetSpec names a cleanable path relative to the project root. The last
// path element may be a wildcard pattern (e.g. "*.egg-info").
type TargetSpec struct {
	Path  string `yaml:"path" json:"path"`
	Label string `yaml:"label" json:"label"`
}

// Rule maps a set of marker entries to a project kind and its targets.
// Markers are direct children of the candidate directory; names containing
// '*' or '?' are wildcard patterns.
type Rule struct {
	Kind    string       `yaml:"kind" json:"kind"`
	Markers []string     `yaml:"markers" json:"markers"`
	Match   MatchMode    `yaml:"match,omitempty" json:"match,omitempty"`
	Targets []TargetSpec `yaml:"targets" json:"targets"`
}

// Validate checks that r can be evaluated and that none of its targets can
// escape the project root.
func (r Rule) Validate() error {
	if strings.TrimSpace(r.Kind) == "" {
		return fmt.Errorf("rule has no kind")
	}
	if len(r.Markers) == 0 {
		return fmt.Errorf("rule %q has no markers", r.Kind)
	}
	for _, m := range r.Markers {
		if m == "" || strings.ContainsAny(m, `/\`) {
			return fmt.Errorf("rule %q: marker %q must be a plain entry name", r.Kind, m)
		}
	}
	switch r.Match {
	case "", MatchAny, MatchAll:
	default:
		return fmt.Errorf("rule %q: unknown match mode %q", r.Kind, r.Match)
	}
	for _, t := range r.Targets {
		p := filepath.Clean(filepath.FromSlash(t.Path))
		if t.Path == "" || p == "." || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
			return fmt.Errorf("rule %q: target %q must be a relative path", r.Kind, t.Path)
		}
		if p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator)) {
			return fmt.Errorf("rule %q: target %q escapes the project root", r.Kind, t.Path)
		}
	}
	return nil
}

func (r Rule) mode() MatchMode {
	if r.Match == "" {
		return MatchAny
	}
	return r.Match
}

func isPattern(name string) bool {
	return strings.ContainsAny(name, "*?")
}

func (t TargetSpec) label() string {
	if t.Label != "" {
		return t.Label
	}
	return t.Path
}
