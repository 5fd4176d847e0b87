package state

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemLoaderListsSorted(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"Banana", "apple", "Cherry"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, 0o644))
	}

	entries := NewFilesystemLoader(nil).List(tmpDir)
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, names(entries))
}

func TestFilesystemLoaderMissingDirectoryIsEmpty(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	missing := filepath.Join(t.TempDir(), "missing")

	entries := NewFilesystemLoader(log).List(missing)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, missing, hook.LastEntry().Data["path"])
}

func TestFilesystemLoaderPermissionDeniedIsEmpty(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chmod does not restrict reads on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	locked := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "secret"), nil, 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	entries := NewFilesystemLoader(log).List(locked)

	assert.Empty(t, entries)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestNewNavigationStateOnEmptyDirectory(t *testing.T) {
	state := NewNavigationState(t.TempDir(), nil)

	assert.Empty(t, state.Entries)
	assert.Equal(t, NoSelection, state.Selection)
	assert.False(t, state.HasSelection())
	assert.Empty(t, state.VisibleEntries())
}
