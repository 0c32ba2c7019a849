package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"text", []byte("hello\n"), 0o644},
		{"empty", []byte{}, 0o644},
		{"private", []byte("secret"), 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out")
			require.NoError(t, AtomicWriteFile(path, tt.data, tt.perm))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.perm, info.Mode().Perm())
		})
	}
}

func TestAtomicWriteFile_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, AtomicWriteFile(path, []byte("new"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestAtomicWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out")
	require.Error(t, AtomicWriteFile(path, []byte("x"), 0o644))
}

func TestAtomicWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, AtomicWriteText(path, "{}", DefaultFilePerm))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))
}

func TestAtomicWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	v := map[string]any{"server": map[string]any{"addr": "localhost:8080"}, "version": 1}

	require.NoError(t, AtomicWriteYAML(path, v, DefaultFilePerm))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "server:\n  addr: localhost:8080\nversion: 1\n", string(got))
}

func TestAtomicWriteYAML_Unmarshalable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.Error(t, AtomicWriteYAML(path, map[string]any{"f": func() {}}, DefaultFilePerm))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
