package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"a.wwu", "b.txt", "nested/c.wwu"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := FindFilesByExtension(dir, ".wwu")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(dir, "a.wwu"),
		filepath.Join(dir, "nested", "c.wwu"),
	}, files)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.wwu")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	files, err := FindFilesByExtension(path, ".wwu")
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)

	_, err = FindFilesByExtension(filepath.Join(dir, "missing.wwu"), ".wwu")
	require.Error(t, err)

	other := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(other, nil, 0o644))
	_, err = FindFilesByExtension(other, ".wwu")
	require.Error(t, err)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	require.Empty(t, Dedupe(nil))
}
