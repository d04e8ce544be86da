package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.xml")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("<Document/>"), 0o644))
	assert.True(t, FileExists(path))

	// A directory is not a file.
	assert.False(t, FileExists(dir))
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))

	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.False(t, DirectoryExists(path))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, EnsureDirectoryExists(nested))
	assert.True(t, DirectoryExists(nested))

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDirectoryExists(nested))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("payments: []"), 0o644))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payments: []", string(data))

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file does not exist")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	// Parent directories are created as needed.
	path := filepath.Join(dir, "out", "2026", "debit.xml")
	require.NoError(t, WriteFile(path, []byte("<Document/>"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<Document/>", string(data))
}
