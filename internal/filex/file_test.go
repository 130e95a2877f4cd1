package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestEnsureParentDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "state", "nested", "session.db")

	got, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "state", "nested"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b.db")

	first, err := EnsureParentDir(target)
	require.NoError(t, err)
	second, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_FailsIfFileBlocksPath(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "state"), []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(tmp, "state", "session.db"))
	require.Error(t, err)
}

func TestLoadImage_PNG(t *testing.T) {
	p := writeFile(t, "slip.png", pngHeader)

	a, err := LoadImage(p)
	require.NoError(t, err)
	require.Equal(t, "slip.png", a.Name)
	require.Equal(t, "image/png", a.ContentType)
	require.Equal(t, pngHeader, a.Data)
}

func TestLoadImage_SniffsInsteadOfTrustingExtension(t *testing.T) {
	p := writeFile(t, "slip.png", []byte("definitely just text"))

	_, err := LoadImage(p)
	require.ErrorIs(t, err, ErrNotImage)
}

func TestLoadImage_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := LoadImage(filepath.Join(t.TempDir(), "nope.jpg"))
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := LoadImage(writeFile(t, "empty.jpg", nil))
		require.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LoadImage(t.TempDir())
		require.ErrorIs(t, err, ErrNotRegular)
	})
}
