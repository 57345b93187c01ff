package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devsweep/internal/clean"
	"github.com/lakshaymaurya-felt/devsweep/internal/config"
	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
	"github.com/lakshaymaurya-felt/devsweep/internal/scan"
	"github.com/lakshaymaurya-felt/devsweep/internal/sizing"
)

// app wires configuration, logging and the scan/clean engine for one run.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
	sizes  *sizing.Accumulator
	walker *scan.Walker

	// depthSet is true when -d/--max-depth was given explicitly.
	depthSet bool
}

func newApp(cmd *cobra.Command) (*app, error) {
	path := configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(core.ExpandHome(path))
	if err != nil {
		return nil, err
	}

	logger, closer, err := core.NewLogger(core.LoggerOptions{File: core.ExpandHome(cfg.LogFile), Debug: debug})
	if err != nil {
		// A read-only cache dir must not prevent cleaning.
		logger, closer = core.DiscardLogger(), nil
	}

	sizes := sizing.NewAccumulator(0)
	classifier := project.NewClassifier(cfg.Rules(), sizes)
	return &app{
		cfg:    cfg,
		logger: logger,
		closer: closer,
		sizes:  sizes,
		walker: scan.NewWalker(classifier, logger),

		depthSet: cmd.Flags().Changed("max-depth"),
	}, nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// roots resolves scan roots: the CLI path, else configured roots, else the
// working directory.
func (a *app) roots(args []string) []string {
	if len(args) > 0 {
		return []string{core.ExpandHome(args[0])}
	}
	if roots := a.cfg.ScanRoots(); len(roots) > 0 {
		return roots
	}
	if wd, err := os.Getwd(); err == nil {
		return []string{wd}
	}
	return []string{"."}
}

func (a *app) scanOptions() scan.Options {
	depth := a.cfg.MaxDepth
	if a.depthSet {
		depth = maxDepth
	}
	return scan.Options{
		MaxDepth: depth,
		Ignore:   a.cfg.Ignore,
		Workers:  a.cfg.WorkerCount(),
	}
}

func (a *app) executor() *clean.Executor {
	return &clean.Executor{
		Workers: a.cfg.WorkerCount(),
		Sizes:   a.sizes,
		Logger:  a.logger,
	}
}

// findProjects scans roots and applies the --older-than filter.
func (a *app) findProjects(roots []string) ([]project.ScannedProject, error) {
	var cutoff time.Time
	if olderThan != "" {
		age, err := scan.ParseAge(olderThan)
		if err != nil {
			return nil, err
		}
		cutoff = time.Now().Add(-age)
	}

	start := time.Now()
	projects, err := a.walker.ScanAll(roots, a.scanOptions())
	if err != nil {
		return nil, err
	}
	a.logger.Info("scan finished",
		"roots", roots,
		"projects", len(projects),
		"warnings", len(a.walker.Warnings()),
		"elapsed", time.Since(start))

	if olderThan != "" {
		projects = scan.OlderThan(projects, cutoff)
	}
	return projects, nil
}

func (a *app) printWarnings(w io.Writer) {
	n := len(a.walker.Warnings())
	if n == 0 || jsonOutput {
		return
	}
	hint := ""
	if !debug {
		hint = " (run with --debug for details)"
	}
	fmt.Fprintf(w, "  %d directories could not be read%s\n\n", n, hint)
}

// writeJSON writes data as indented JSON.
func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
