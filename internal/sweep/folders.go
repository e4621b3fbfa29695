package sweep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// SizeUnknown is the sentinel recorded when a folder's size cannot be
// measured, e.g. due to permission errors.
const SizeUnknown int64 = -1

// FolderSize pairs a directory path with its total size in kilobytes.
type FolderSize struct {
	// Path is the absolute directory path.
	Path string `json:"path"`
	// SizeKB is the size in kilobytes, or SizeUnknown.
	SizeKB int64 `json:"size_kb"`
}

// Sizer measures the total size of one directory tree in kilobytes.
type Sizer interface {
	SizeKB(ctx context.Context, dir string) (int64, error)
}

// LargestFolders measures every immediate subdirectory of root and returns
// the results sorted by size, largest first. A folder whose size cannot be
// measured is kept with the SizeUnknown sentinel rather than dropped, so the
// inventory always covers the full set of subdirectories.
//
// The sort is stable over os.ReadDir's name ordering, so repeated runs over
// an unchanged tree yield identical output. The optional progress hook is
// invoked after each folder has been measured.
func LargestFolders(ctx context.Context, sizer Sizer, root string, progress func(done, total int, dir string)) ([]FolderSize, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", root, err)
	}

	dirs := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(root, entry.Name()))
		}
	}

	folders := make([]FolderSize, 0, len(dirs))

	for i, dir := range dirs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		size, err := sizer.SizeKB(ctx, dir)
		if err != nil {
			size = SizeUnknown
		}

		folders = append(folders, FolderSize{Path: dir, SizeKB: size})

		if progress != nil {
			progress(i+1, len(dirs), dir)
		}
	}

	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].SizeKB > folders[j].SizeKB
	})

	return folders, nil
}
