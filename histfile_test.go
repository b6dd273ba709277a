package lineedit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackendRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	lines, err := backend.Load()
	require.NoError(t, err)
	assert.Empty(t, lines, "a missing file means no history yet")

	for _, line := range []string{"print a", "print b", "exit"} {
		require.NoError(t, backend.Append(line))
	}

	lines, err = backend.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"print a", "print b", "exit"}, lines)
	assert.NoError(t, backend.Close())
}

func TestFileBackendAppendEmptyLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	require.NoError(t, backend.Append(""))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "an empty line must not create the file")
}

func TestFileBackendLoadSkipsBlankLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("one\n\n  \ntwo\n"), 0600))

	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	lines, err := backend.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestFileBackendCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "history")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	require.NoError(t, backend.Append("hello"))
	lines, err := backend.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, lines)
}

func TestFileBackendRotation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)
	backend.MaxFileSize = 16
	backend.MaxBackups = 2

	require.NoError(t, backend.Append("0123456789abcdef")) // reaches the threshold
	require.NoError(t, backend.Append("second"))           // triggers the first rotation

	_, err = os.Stat(path + ".1")
	assert.NoError(t, err, "the full file moves to the .1 backup")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))

	// Fill again and rotate once more; the old backup shifts to .2.
	require.NoError(t, backend.Append("0123456789"))
	require.NoError(t, backend.Append("third"))

	data, err = os.ReadFile(path + ".2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "0123456789abcdef"))
	_, err = os.Stat(path + ".1")
	assert.NoError(t, err)
}

func TestFileBackendRotationWithoutBackups(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)
	backend.MaxFileSize = 4
	backend.MaxBackups = 0

	require.NoError(t, backend.Append("long enough"))
	require.NoError(t, backend.Append("next"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "next\n", string(data), "with no backups the file is truncated in place")
	_, err = os.Stat(path + ".1")
	assert.True(t, os.IsNotExist(err))
}

func TestNewFileBackendPathHandling(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "empty path", path: "", wantErr: true},
		{name: "relative path", path: "history.txt", wantErr: false},
		{name: "home path", path: "~/history.txt", wantErr: false},
		{name: "absolute path", path: "/tmp/history.txt", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := NewFileBackend(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(backend.path), "stored path must be absolute")
		})
	}
}

func TestDefaultHistoryFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "lineedit", "history"), DefaultHistoryFile())
}
