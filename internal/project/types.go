// Package project recognises project roots and the regenerable artifacts
// inside them.
package project

import "time"

// CleanTarget is a sized, absolute handle on one cleanable artifact. It is
// not kept in sync with the filesystem: existence is re-checked at delete time.
type CleanTarget struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	SizeBytes uint64 `json:"size_bytes"`
}

// ScannedProject is one detected project root and its cleanable targets.
type ScannedProject struct {
	Name                string        `json:"name"`
	Kind                string        `json:"kind"`
	Path                string        `json:"path"`
	LastModified        time.Time     `json:"last_modified"`
	CleanTargets        []CleanTarget `json:"clean_targets"`
	TotalCleanableBytes uint64        `json:"total_cleanable_bytes"`
}

// NewScannedProject builds a project whose total is derived from targets,
// so the two can never disagree.
func NewScannedProject(name, kind, path string, lastModified time.Time, targets []CleanTarget) ScannedProject {
	var total uint64
	for _, t := range targets {
		total += t.SizeBytes
	}
	return ScannedProject{
		Name:                name,
		Kind:                kind,
		Path:                path,
		LastModified:        lastModified,
		CleanTargets:        targets,
		TotalCleanableBytes: total,
	}
}

// TargetNames returns the labels of p's targets in order.
func (p ScannedProject) TargetNames() []string {
	names := make([]string, len(p.CleanTargets))
	for i, t := range p.CleanTargets {
		names[i] = t.Name
	}
	return names
}
