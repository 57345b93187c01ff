package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/devsweep/internal/project"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

// setup builds a tree with a rust and a node project and a config file that
// keeps the log inside the test directory.
func setup(t *testing.T) (root, cfgPath string) {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))

	root = filepath.Join(base, "src")
	writeFile(t, filepath.Join(root, "api", "Cargo.toml"), 1)
	writeFile(t, filepath.Join(root, "api", "target", "debug", "api"), 4000)
	writeFile(t, filepath.Join(root, "web", "package.json"), 1)
	writeFile(t, filepath.Join(root, "web", "node_modules", "left-pad", "index.js"), 1000)
	writeFile(t, filepath.Join(root, "notes", "todo.txt"), 10)

	cfgPath = filepath.Join(base, "config.yaml")
	cfg := "log_file: " + filepath.ToSlash(filepath.Join(base, "dev-sweep.log")) + "\nworkers: 2\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return root, cfgPath
}

// run executes the root command with fresh global flag state.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	debug, jsonOutput, olderThan, configPath = false, false, "", ""
	maxDepth = -1
	dryRun, cleanAll, assumeYes = false, false, false
	require.NoError(t, rootCmd.Flags().Set("min-size", ""))
	require.NoError(t, scanCmd.Flags().Set("min-size", ""))
	require.NoError(t, configCmd.Flags().Set("show", "false"))
	require.NoError(t, configCmd.Flags().Set("reset", "false"))
	rootCmd.PersistentFlags().Lookup("max-depth").Changed = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScanJSON(t *testing.T) {
	root, cfg := setup(t)

	out, err := run(t, "scan", root, "--json", "--config", cfg)
	require.NoError(t, err)

	var projects []project.ScannedProject
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "api", projects[0].Name, "largest first")
	assert.Equal(t, "rust", projects[0].Kind)
	assert.Equal(t, uint64(4000), projects[0].TotalCleanableBytes)
	assert.Equal(t, "node", projects[1].Kind)
}

func TestScan_MinSizeAndDepth(t *testing.T) {
	root, cfg := setup(t)

	out, err := run(t, "scan", root, "--json", "--min-size", "2kB", "--config", cfg)
	require.NoError(t, err)
	var projects []project.ScannedProject
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "api", projects[0].Name)

	out, err = run(t, root, "--json", "-d", "0", "--config", cfg)
	require.NoError(t, err)
	projects = nil
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	assert.Empty(t, projects)
}

func TestScan_Table(t *testing.T) {
	root, cfg := setup(t)

	out, err := run(t, root, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "api")
	assert.Contains(t, out, "node_modules/")
	assert.Contains(t, out, "2 projects")
}

func TestScan_Errors(t *testing.T) {
	_, cfg := setup(t)

	_, err := run(t, "scan", filepath.Join(t.TempDir(), "missing"), "--config", cfg)
	assert.Error(t, err)

	_, err = run(t, "scan", t.TempDir(), "--older-than", "soon", "--config", cfg)
	assert.Error(t, err)

	_, err = run(t, "scan", t.TempDir(), "--min-size", "lots", "--config", cfg)
	assert.Error(t, err)
}

type report struct {
	DryRun          bool     `json:"dry_run"`
	ProjectsCleaned int      `json:"projects_cleaned"`
	TotalBytesFreed uint64   `json:"total_bytes_freed"`
	Errors          []string `json:"errors"`
}

func TestClean_DryRunThenReal(t *testing.T) {
	root, cfg := setup(t)

	out, err := run(t, "clean", root, "--all", "--dry-run", "--json", "--config", cfg)
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.DryRun)
	assert.Equal(t, 2, r.ProjectsCleaned)
	assert.Equal(t, uint64(5000), r.TotalBytesFreed)
	assert.DirExists(t, filepath.Join(root, "api", "target"))

	out, err = run(t, "clean", root, "--all", "--yes", "--json", "--config", cfg)
	require.NoError(t, err)
	r = report{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.False(t, r.DryRun)
	assert.Equal(t, uint64(5000), r.TotalBytesFreed)
	assert.Empty(t, r.Errors)
	assert.NoDirExists(t, filepath.Join(root, "api", "target"))
	assert.NoDirExists(t, filepath.Join(root, "web", "node_modules"))
	assert.FileExists(t, filepath.Join(root, "web", "package.json"))

	out, err = run(t, "scan", root, "--json", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestClean_RefusesWithoutTerminal(t *testing.T) {
	root, cfg := setup(t)

	_, err := run(t, "clean", root, "--config", cfg)
	assert.ErrorContains(t, err, "--all")

	_, err = run(t, "clean", root, "--all", "--config", cfg)
	assert.ErrorContains(t, err, "--yes")
	assert.DirExists(t, filepath.Join(root, "api", "target"))
}

func TestSummaryJSON(t *testing.T) {
	root, cfg := setup(t)

	out, err := run(t, "summary", root, "--json", "--config", cfg)
	require.NoError(t, err)

	var s struct {
		TotalProjects    int    `json:"total_projects"`
		ReclaimableBytes uint64 `json:"total_reclaimable_bytes"`
		ByKind           []struct {
			Kind string `json:"kind"`
		} `json:"by_kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, uint64(5000), s.ReclaimableBytes)
	require.Len(t, s.ByKind, 2)
	assert.Equal(t, "rust", s.ByKind[0].Kind)
}

func TestConfigResetAndShow(t *testing.T) {
	_, cfg := setup(t)

	_, err := run(t, "config", "--reset", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "config", "--show", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "max_depth: -1")
	assert.NotContains(t, out, "log_file")
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev-sweep 1.2.3 (abc) built today\n", out)
}

func TestScan_ExplicitDepthOverridesConfig(t *testing.T) {
	root, cfg := setup(t)
	f, err := os.OpenFile(cfg, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("max_depth: 0\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	count := func(args ...string) int {
		out, err := run(t, append([]string{"scan", root, "--json", "--config", cfg}, args...)...)
		require.NoError(t, err)
		var projects []project.ScannedProject
		require.NoError(t, json.Unmarshal([]byte(out), &projects))
		return len(projects)
	}

	assert.Equal(t, 0, count(), "config depth applies by default")
	assert.Equal(t, 2, count("-d", "-1"), "explicit -1 means unbounded")
	assert.Equal(t, 2, count("--max-depth", "1"))
}

func TestClean_EmptyJSONReport(t *testing.T) {
	_, cfg := setup(t)

	out, err := run(t, "clean", t.TempDir(), "--json", "--config", cfg)
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Zero(t, r.ProjectsCleaned)
	assert.NotNil(t, r.Errors)

	// The same report is used when the picker returns nothing.
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })
	var buf bytes.Buffer
	require.NoError(t, reportEmpty(&buf, "Nothing selected.\n"))
	assert.NotContains(t, buf.String(), "Nothing selected")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.Zero(t, r.TotalBytesFreed)
}
