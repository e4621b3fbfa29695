package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrFdupesNotFound is returned when the fdupes binary is not installed.
var ErrFdupesNotFound = errors.New("fdupes not found, install fdupes to search for duplicates")

// granularity is the unit of the fdupes -G flag: hundredths of a kilobyte.
const granularity = 100

// Fdupes finds groups of byte-identical files by shelling out to fdupes(1).
type Fdupes struct{}

// Find runs fdupes recursively below root with size headers enabled and
// returns its raw grouped output for parsing. minSizeKB sets the smallest
// file size reported.
//
// A missing binary surfaces as ErrFdupesNotFound; any other non-zero exit is
// returned with the tool's stderr text attached. There are no retries and no
// partial results.
func (Fdupes) Find(ctx context.Context, root string, minSizeKB int64) (string, error) {
	if _, err := exec.LookPath("fdupes"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFdupesNotFound, err)
	}

	args, err := fdupesArgs(root, minSizeKB)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "fdupes", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.Contains(msg, "command not found") {
			return "", fmt.Errorf("%w: %s", ErrFdupesNotFound, msg)
		}

		return "", fmt.Errorf("running fdupes: %s: %w", msg, err)
	}

	return stdout.String(), nil
}

// fdupesArgs builds the argument list: recursive search, size headers, and
// the minimum size threshold in the tool's own granularity. The root is
// resolved to an absolute path so the reported members are absolute no
// matter how the caller spelled it.
func fdupesArgs(root string, minSizeKB int64) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	return []string{"-r", "-S", "-G", strconv.FormatInt(minSizeKB*granularity, 10), root}, nil
}
