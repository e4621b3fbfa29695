package sweep

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSizer serves canned sizes keyed by directory basename and fails for
// anything else.
type stubSizer struct {
	sizes map[string]int64
}

func (s stubSizer) SizeKB(_ context.Context, dir string) (int64, error) {
	size, ok := s.sizes[filepath.Base(dir)]
	if !ok {
		return 0, errors.New("permission denied")
	}

	return size, nil
}

func TestLargestFolders(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}

	// Plain files are not part of the inventory.
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644))

	sizer := stubSizer{sizes: map[string]int64{"alpha": 10, "beta": 300}}

	folders, err := LargestFolders(context.Background(), sizer, root, nil)
	require.NoError(t, err)
	require.Len(t, folders, 3)

	assert.Equal(t, "beta", filepath.Base(folders[0].Path))
	assert.Equal(t, int64(300), folders[0].SizeKB)
	assert.Equal(t, "alpha", filepath.Base(folders[1].Path))
	assert.Equal(t, int64(10), folders[1].SizeKB)

	// Unmeasurable folders stay in the inventory with the sentinel.
	assert.Equal(t, "gamma", filepath.Base(folders[2].Path))
	assert.Equal(t, SizeUnknown, folders[2].SizeKB)
}

func TestLargestFoldersIdempotent(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}

	// Equal sizes keep ReadDir's name order, so repeated runs must agree.
	sizer := stubSizer{sizes: map[string]int64{"a": 5, "b": 5, "c": 9, "d": 5}}

	first, err := LargestFolders(context.Background(), sizer, root, nil)
	require.NoError(t, err)

	second, err := LargestFolders(context.Background(), sizer, root, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "c", filepath.Base(first[0].Path))
}

func TestLargestFoldersMissingRoot(t *testing.T) {
	_, err := LargestFolders(context.Background(), stubSizer{}, filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestLargestFoldersProgress(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"one", "two"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}

	var calls int

	sizer := stubSizer{sizes: map[string]int64{"one": 1, "two": 2}}
	_, err := LargestFolders(context.Background(), sizer, root, func(done, total int, _ string) {
		calls++
		assert.Equal(t, 2, total)
		assert.Equal(t, calls, done)
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestLargestFoldersCancelled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LargestFolders(ctx, stubSizer{}, root, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
