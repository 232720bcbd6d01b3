package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubDir_DefaultsToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubDir("", "exports")
	require.NoError(t, err)

	wantFi, err := os.Stat(filepath.Join(tmp, "exports"))
	require.NoError(t, err)
	gotFi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, os.SameFile(wantFi, gotFi))

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), gotFi.Mode().Perm())
	}
}

func TestEnsureSubDir_NestedAndIdempotent(t *testing.T) {
	base := t.TempDir()

	first, err := EnsureSubDir(base, filepath.Join("a", "b"))
	require.NoError(t, err)
	second, err := EnsureSubDir(base, filepath.Join("a", "b"))
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, filepath.Join(base, "a", "b"), first)
}

func TestEnsureSubDir_FileInTheWay(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "taken"), []byte("x"), 0o600))

	_, err := EnsureSubDir(base, "taken")
	require.Error(t, err)
}
