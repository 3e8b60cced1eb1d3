package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabasePath(t *testing.T) {
	tests := map[string]string{
		"":                           "",
		":memory:":                   "",
		"file:w.db?mode=ro":          "",
		"w.db":                       "w.db",
		"/var/lib/wk/w.db?_txlock=x": "/var/lib/wk/w.db",
	}
	for in, want := range tests {
		assert.Equal(t, want, DatabasePath(in), in)
	}
}

func TestEnsureParentDir_Creates(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data", "nested", "w.db")

	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir(path), "idempotent")

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_BlockedByFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "sub", "w.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mkdir")
}
