package tool

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFdupesArgs(t *testing.T) {
	args, err := fdupesArgs("/home/u/Downloads", 100)
	require.NoError(t, err)

	// -G is expressed in hundredths of a kilobyte.
	assert.Equal(t, []string{"-r", "-S", "-G", "10000", "/home/u/Downloads"}, args)
}

func TestFdupesArgsResolvesRelativeRoot(t *testing.T) {
	args, err := fdupesArgs(filepath.Join("relative", "dir"), 10)
	require.NoError(t, err)

	root := args[len(args)-1]
	assert.True(t, filepath.IsAbs(root), "root %q should be absolute", root)
	assert.True(t, strings.HasSuffix(root, filepath.Join("relative", "dir")), root)
}

func TestFdupesFindMissingBinary(t *testing.T) {
	if _, err := exec.LookPath("fdupes"); err == nil {
		t.Skip("fdupes is installed")
	}

	_, err := Fdupes{}.Find(context.Background(), t.TempDir(), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFdupesNotFound)
}
