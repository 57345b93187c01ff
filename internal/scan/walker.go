// Package scan walks a filesystem tree and reports the projects it finds.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
	"github.com/lakshaymaurya-felt/devsweep/internal/sizing"
)

// maxWarnings caps the warnings kept per walker.
const maxWarnings = 500

var (
	// ErrRootNotFound is returned when the scan root does not exist.
	ErrRootNotFound = errors.New("path does not exist")
	// ErrRootNotDir is returned when the scan root is not a directory.
	ErrRootNotDir = errors.New("path is not a directory")
)

// Options controls a walk.
type Options struct {
	// MaxDepth bounds the walk in directories below the root (root is 0).
	// Negative means unbounded.
	MaxDepth int

	// Ignore lists directory name patterns that are never entered.
	Ignore []string

	// Workers bounds parallel target sizing. Zero selects NumCPU.
	Workers int

	// IncludeEmpty keeps projects with no cleanable target present.
	IncludeEmpty bool
}

// Walker performs depth-first project discovery.
type Walker struct {
	classifier *project.Classifier
	logger     *slog.Logger

	mu       sync.Mutex
	warnings []string
}

// NewWalker creates a walker using classifier. A nil logger discards.
func NewWalker(classifier *project.Classifier, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = core.DiscardLogger()
	}
	return &Walker{classifier: classifier, logger: logger}
}

// Warnings returns the traversal problems recorded so far.
func (w *Walker) Warnings() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.warnings...)
}

func (w *Walker) addWarning(msg string) {
	w.logger.Debug("scan warning", "detail", msg)
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.warnings) < maxWarnings {
		w.warnings = append(w.warnings, msg)
	}
}

// CheckRoot validates a scan root before any traversal starts.
func CheckRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", root, err)
	}
	info, err := os.Stat(core.LongPath(abs))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, abs)
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootNotDir, abs)
	}
	return abs, nil
}

// Scan walks root and returns the detected projects in traversal order.
// Only an invalid root is an error; everything below it is best effort.
func (w *Walker) Scan(root string, opts Options) ([]project.ScannedProject, error) {
	return w.ScanAll([]string{root}, opts)
}

// ScanAll scans each root in turn. A project reachable from more than one
// root is reported once.
func (w *Walker) ScanAll(roots []string, opts Options) ([]project.ScannedProject, error) {
	abs := make([]string, 0, len(roots))
	for _, r := range roots {
		a, err := CheckRoot(r)
		if err != nil {
			return nil, err
		}
		abs = append(abs, a)
	}

	seen := make(map[string]bool)
	var detections []project.Detection
	for _, root := range abs {
		for _, d := range w.walk(root, opts) {
			if seen[d.Dir] {
				continue
			}
			seen[d.Dir] = true
			detections = append(detections, d)
		}
	}

	projects := w.measure(detections, opts.Workers)

	if opts.IncludeEmpty {
		return projects, nil
	}
	out := projects[:0]
	for _, p := range projects {
		if len(p.CleanTargets) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

type frame struct {
	path  string
	depth int
}

// walk runs the traversal over an explicit stack. A classified directory is
// a leaf: nothing below it is visited.
func (w *Walker) walk(root string, opts Options) []project.Detection {
	var found []project.Detection
	stack := []frame{{path: root, depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(core.LongPath(f.path))
		if err != nil {
			// Permission denied or removed mid-scan: skip, don't fail.
			w.addWarning("cannot read " + f.path + ": " + err.Error())
			continue
		}

		if d, ok := w.classifier.Detect(f.path, entries); ok {
			w.logger.Debug("project detected", "kind", d.Kind, "path", f.path)
			found = append(found, d)
			continue
		}

		if opts.MaxDepth >= 0 && f.depth >= opts.MaxDepth {
			continue
		}

		// Push in reverse so children pop in lexical order.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if !e.IsDir() || e.Type()&fs.ModeSymlink != 0 {
				continue
			}
			if project.MatchAnyPattern(opts.Ignore, e.Name()) {
				continue
			}
			child := filepath.Join(f.path, e.Name())
			if sizing.IsReparsePoint(child) {
				w.addWarning("skipping junction/reparse: " + child)
				continue
			}
			stack = append(stack, frame{path: child, depth: f.depth + 1})
		}
	}
	return found
}

// measure sizes every detection on a bounded pool. Results keep the
// detection order.
func (w *Walker) measure(detections []project.Detection, workers int) []project.ScannedProject {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	projects := make([]project.ScannedProject, len(detections))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, d := range detections {
		g.Go(func() error {
			projects[i] = w.classifier.Measure(d)
			return nil
		})
	}
	_ = g.Wait()
	return projects
}
