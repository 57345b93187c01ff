// Package clean deletes the cleanable targets of scanned projects.
package clean

import (
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
	"github.com/lakshaymaurya-felt/devsweep/internal/sizing"
)

// Result reports what cleaning one project achieved. BytesFreed counts
// only targets that were actually removed (or, in a dry run, would be).
type Result struct {
	ProjectName string   `json:"project_name"`
	Path        string   `json:"path"`
	BytesFreed  uint64   `json:"bytes_freed"`
	Errors      []string `json:"errors"`
}

// Forgetter drops cached measurements for deleted paths.
type Forgetter interface {
	Forget(path string)
}

// Executor removes project targets with per-target failure isolation.
type Executor struct {
	// Workers bounds how many projects are cleaned at once. Zero selects
	// NumCPU.
	Workers int

	// Remove deletes one path. Defaults to core.SafeDelete.
	Remove func(path string) error

	// Exists re-checks a target before deletion. Defaults to sizing.Exists.
	Exists func(path string) (bool, error)

	// Sizes, when set, is told about every removed target.
	Sizes Forgetter

	Logger *slog.Logger
}

// Clean processes projects and returns one Result per project, in input
// order. A failing target never stops the remaining targets or projects.
func (e *Executor) Clean(projects []project.ScannedProject, dryRun bool) []Result {
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(projects))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range projects {
		g.Go(func() error {
			results[i] = e.cleanProject(p, dryRun)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (e *Executor) cleanProject(p project.ScannedProject, dryRun bool) Result {
	res := Result{ProjectName: p.Name, Path: p.Path, Errors: []string{}}
	log := e.logger().With("project", p.Path, "dry_run", dryRun)

	for _, t := range p.CleanTargets {
		if dryRun {
			res.BytesFreed += t.SizeBytes
			continue
		}

		// It may have been removed since the scan: nothing to do.
		present, err := e.exists(t.Path)
		if err != nil {
			log.Error("stat failed", "target", t.Path, "err", err)
			res.Errors = append(res.Errors, fmt.Sprintf("cannot access %s (%s): %v", t.Name, t.Path, err))
			continue
		}
		if !present {
			log.Debug("target already gone", "target", t.Path)
			continue
		}

		if err := checkTarget(p, t); err != nil {
			log.Warn("target refused", "target", t.Path, "err", err)
			res.Errors = append(res.Errors, err.Error())
			continue
		}

		if err := e.remove(t.Path); err != nil {
			log.Error("delete failed", "target", t.Path, "err", err)
			res.Errors = append(res.Errors, fmt.Sprintf("failed to remove %s (%s): %v", t.Name, t.Path, err))
			continue
		}

		if e.Sizes != nil {
			e.Sizes.Forget(t.Path)
		}
		log.Info("deleted", "target", t.Path, "bytes", t.SizeBytes)
		res.BytesFreed += t.SizeBytes
	}
	return res
}

func (e *Executor) remove(path string) error {
	if e.Remove != nil {
		return e.Remove(path)
	}
	return core.SafeDelete(path, false)
}

func (e *Executor) exists(path string) (bool, error) {
	if e.Exists != nil {
		return e.Exists(path)
	}
	return sizing.Exists(path)
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return core.DiscardLogger()
}

// TotalFreed sums BytesFreed across results.
func TotalFreed(results []Result) uint64 {
	var total uint64
	for _, r := range results {
		total += r.BytesFreed
	}
	return total
}

// AllErrors flattens the error messages of results in order.
func AllErrors(results []Result) []string {
	errs := []string{}
	for _, r := range results {
		errs = append(errs, r.Errors...)
	}
	return errs
}
