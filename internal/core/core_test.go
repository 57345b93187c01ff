package core

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsProtectedPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.True(t, IsProtectedPath(home))
	assert.True(t, IsProtectedPath(home+string(filepath.Separator)))
	assert.True(t, IsProtectedPath(filepath.VolumeName(home)+string(filepath.Separator)))
	assert.False(t, IsProtectedPath(filepath.Join(t.TempDir(), "proj", "target")))
	if runtime.GOOS != "windows" {
		assert.True(t, IsProtectedPath("/usr"))
		assert.True(t, IsProtectedPath("/etc/"))
	}
}

func TestSafeDelete_Refusals(t *testing.T) {
	err := SafeDelete("", false)
	assert.True(t, errors.Is(err, ErrProtectedPath))

	home, _ := os.UserHomeDir()
	err = SafeDelete(home, false)
	assert.True(t, errors.Is(err, ErrProtectedPath))
	assert.DirExists(t, home)
}

func TestSafeDelete_RemovesTree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "debug", "deps"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "debug", "deps", "a.rlib"), []byte("x"), 0o644))

	require.NoError(t, SafeDelete(dir, true))
	assert.DirExists(t, dir, "dry run leaves the tree")

	require.NoError(t, SafeDelete(dir, false))
	assert.NoDirExists(t, dir)

	require.NoError(t, SafeDelete(dir, false), "already gone is not an error")
}

func TestSafeDelete_RemovesLinkNotTarget(t *testing.T) {
	base := t.TempDir()
	outside := filepath.Join(base, "outside")
	require.NoError(t, os.MkdirAll(outside, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "keep.txt"), []byte("x"), 0o644))

	link := filepath.Join(base, "proj", "node_modules")
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0o755))
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	require.NoError(t, SafeDelete(link, false))
	_, err := os.Lstat(link)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.FileExists(t, filepath.Join(outside, "keep.txt"))
}

func TestFormatAndParseSize(t *testing.T) {
	assert.Equal(t, "50 MB", FormatSize(50_000_000))
	assert.Equal(t, "0 B", FormatSize(0))

	n, err := ParseSize("50MB")
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000_000), n)

	_, err = ParseSize("lots")
	assert.Error(t, err)
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "unknown", FormatAge(time.Time{}))
	assert.Contains(t, FormatAge(time.Now().Add(-3*time.Hour)), "ago")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "src"), ExpandHome("~/src"))
	assert.Equal(t, "/abs/~", ExpandHome("/abs/~"))
	assert.Equal(t, "~user", ExpandHome("~user"))
}

func TestNewLogger_WritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "dev-sweep.log")
	logger, closer, err := NewLogger(LoggerOptions{File: file})
	require.NoError(t, err)

	logger.Info("deleted", "target", "/src/app/target")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=deleted")
	assert.Contains(t, string(data), "target=/src/app/target")
}
