package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/lakshaymaurya-felt/devsweep/internal/sizing"
)

// Sizer measures the byte size of a path. Implementations must not fail:
// unreadable content simply counts as zero.
type Sizer interface {
	Measure(path string) uint64
}

// Detection is a classified directory whose targets are resolved but not
// yet sized.
type Detection struct {
	Kind         string
	Dir          string
	LastModified time.Time
	Targets      []CleanTarget // SizeBytes still zero
}

// Classifier applies an ordered rule table to candidate directories.
// First matching rule wins.
type Classifier struct {
	rules []Rule
	sizer Sizer
}

// NewClassifier creates a classifier over rules, evaluated in slice order.
// The rules slice is copied; later changes by the caller are not seen.
func NewClassifier(rules []Rule, sizer Sizer) *Classifier {
	return &Classifier{
		rules: append([]Rule(nil), rules...),
		sizer: sizer,
	}
}

// Rules returns a copy of the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify reads dir and, if a rule matches, returns the project with every
// existing target sized. Unreadable directories never match.
func (c *Classifier) Classify(dir string) (*ScannedProject, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, false
	}
	d, ok := c.Detect(dir, entries)
	if !ok {
		return nil, false
	}
	p := c.Measure(d)
	return &p, true
}

// Detect evaluates the rules against dir's direct children. entries must be
// the result of reading dir.
func (c *Classifier) Detect(dir string, entries []fs.DirEntry) (Detection, bool) {
	byName := make(map[string]fs.DirEntry, len(entries))
	for _, e := range entries {
		byName[e.Name()] = e
	}

	for i := range c.rules {
		rule := &c.rules[i]
		markers, ok := matchMarkers(rule, entries, byName)
		if !ok {
			continue
		}
		return Detection{
			Kind:         rule.Kind,
			Dir:          dir,
			LastModified: lastModified(dir, markers),
			Targets:      resolveTargets(dir, rule.Targets, byName),
		}, true
	}
	return Detection{}, false
}

// Measure sizes every target of d and builds the project record.
func (c *Classifier) Measure(d Detection) ScannedProject {
	targets := make([]CleanTarget, len(d.Targets))
	for i, t := range d.Targets {
		t.SizeBytes = c.sizer.Measure(t.Path)
		targets[i] = t
	}
	return NewScannedProject(filepath.Base(d.Dir), d.Kind, d.Dir, d.LastModified, targets)
}

// matchMarkers returns the entries satisfying rule's markers, or false when
// the rule does not match.
func matchMarkers(rule *Rule, entries []fs.DirEntry, byName map[string]fs.DirEntry) ([]fs.DirEntry, bool) {
	var found []fs.DirEntry
	for _, marker := range rule.Markers {
		hits := lookup(marker, entries, byName)
		if len(hits) == 0 {
			if rule.mode() == MatchAll {
				return nil, false
			}
			continue
		}
		found = append(found, hits...)
	}
	return found, len(found) > 0
}

func lookup(name string, entries []fs.DirEntry, byName map[string]fs.DirEntry) []fs.DirEntry {
	if !isPattern(name) {
		if e, ok := byName[name]; ok {
			return []fs.DirEntry{e}
		}
		return nil
	}
	var hits []fs.DirEntry
	for _, e := range entries {
		if MatchName(name, e.Name()) {
			hits = append(hits, e)
		}
	}
	return hits
}

// lastModified is the newest mtime among the marker entries, falling back
// to the directory's own mtime.
func lastModified(dir string, markers []fs.DirEntry) time.Time {
	var newest time.Time
	for _, m := range markers {
		info, err := m.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	if newest.IsZero() {
		if info, err := os.Stat(dir); err == nil {
			newest = info.ModTime()
		}
	}
	return newest
}

// resolveTargets returns the targets that exist under dir, in rule order.
// A target nested inside an already selected one is dropped so no byte is
// counted twice.
func resolveTargets(dir string, specs []TargetSpec, byName map[string]fs.DirEntry) []CleanTarget {
	var out []CleanTarget
	seen := make(map[string]bool)

	add := func(name, path string) {
		if seen[path] {
			return
		}
		for _, t := range out {
			if strings.HasPrefix(path, t.Path+string(filepath.Separator)) ||
				strings.HasPrefix(t.Path, path+string(filepath.Separator)) {
				return
			}
		}
		seen[path] = true
		out = append(out, CleanTarget{Name: name, Path: path})
	}

	for _, spec := range specs {
		rel := filepath.Clean(filepath.FromSlash(spec.Path))
		parentRel, base := filepath.Split(rel)

		// Nested targets must not be reached through a link out of the project.
		if parentRel != "" {
			if link, err := sizing.LinkedAncestor(dir, filepath.Join(dir, rel)); err != nil || link != "" {
				continue
			}
		}

		if !isPattern(base) {
			if parentRel == "" {
				if _, ok := byName[base]; !ok {
					continue
				}
			} else if _, err := os.Lstat(filepath.Join(dir, rel)); err != nil {
				continue
			}
			add(spec.label(), filepath.Join(dir, rel))
			continue
		}

		parent := filepath.Join(dir, parentRel)
		var names []string
		if parentRel == "" {
			for name := range byName {
				names = append(names, name)
			}
		} else {
			children, err := os.ReadDir(parent)
			if err != nil {
				continue
			}
			for _, c := range children {
				names = append(names, c.Name())
			}
		}
		slices.Sort(names)
		for _, name := range names {
			if MatchName(base, name) {
				add(spec.label()+" ("+name+")", filepath.Join(parent, name))
			}
		}
	}
	return out
}
