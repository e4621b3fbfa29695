// Package tool wraps the external commands behind the sweep pipelines: du(1)
// for directory sizing and fdupes(1) for duplicate discovery, plus a native
// fastwalk-based sizer for hosts without du.
package tool

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Du measures directory sizes by shelling out to "du -sk", which reports
// each argument's total size in kilobytes.
type Du struct{}

// SizeKB runs du on dir and parses the leading size field of its
// tab-separated "<size>\t<path>" output.
func (Du) SizeKB(ctx context.Context, dir string) (int64, error) {
	out, err := exec.CommandContext(ctx, "du", "-sk", dir).Output()
	if err != nil {
		return 0, fmt.Errorf("running du on %q: %w", dir, err)
	}

	return parseDuLine(string(out))
}

// parseDuLine extracts the kilobyte count from one "<size>\t<path>" line.
func parseDuLine(line string) (int64, error) {
	size, _, ok := strings.Cut(line, "\t")
	if !ok {
		return 0, fmt.Errorf("unexpected du output %q", line)
	}

	kb, err := strconv.ParseInt(strings.TrimSpace(size), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing du output %q: %w", line, err)
	}

	return kb, nil
}
