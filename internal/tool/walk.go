package tool

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Walk measures directory sizes natively with a parallel filesystem walk.
// It is the fallback sizer for hosts without du installed.
type Walk struct{}

// SizeKB sums the sizes of all regular files below dir and returns the total
// in kilobytes. Unreadable entries are skipped, so the result can undercount
// on trees with permission errors.
func (Walk) SizeKB(ctx context.Context, dir string) (int64, error) {
	var (
		mu    sync.Mutex
		total int64
	)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		mu.Lock()
		total += info.Size()
		mu.Unlock()

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walking %q: %w", dir, err)
	}

	return total / 1024, nil
}
