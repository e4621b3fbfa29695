package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dupsweep/internal/sweep"
	"github.com/idelchi/dupsweep/internal/tool"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output to stderr if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// pathArg returns the positional path argument, defaulting to the home
// directory.
func pathArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return home, nil
}

// validate checks the unit and output flags shared by all subcommands.
func validate(opts *options) error {
	allowedOutputs := []string{"table", "json"}
	if !slices.Contains(allowedOutputs, opts.output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", opts.output, allowedOutputs)
	}

	if _, err := sweep.Format(0, opts.unit); err != nil {
		return err
	}

	return nil
}

// pickSizer selects the directory sizer. "auto" prefers du when it is on
// PATH and falls back to the native walk.
func pickSizer(name string) (sweep.Sizer, error) {
	switch name {
	case "du":
		return tool.Du{}, nil
	case "walk":
		return tool.Walk{}, nil
	case "auto":
		if _, err := exec.LookPath("du"); err == nil {
			return tool.Du{}, nil
		}

		return tool.Walk{}, nil
	default:
		return nil, fmt.Errorf("unknown sizer %q: must be one of %v", name, []string{"du", "walk", "auto"})
	}
}

// parseMinSize converts a human-readable size string to kilobytes. Binary
// suffixes (KiB, MiB) divide down exactly; decimal suffixes (KB, MB) are
// 1000-based and truncate.
func parseMinSize(value string) (int64, error) {
	size, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("invalid min-size: %w", err)
	}

	return int64(size) / 1024, nil //nolint:gosec // Size conversion from humanize is safe
}

func runFolders(ctx context.Context, opts *options, root string) error {
	if err := validate(opts); err != nil {
		return err
	}

	sizer, err := pickSizer(opts.sizer)
	if err != nil {
		return err
	}

	log := logger{enabled: opts.debug}
	log.printf("[debug]: sizing %q with %T\n", root, sizer)

	enableProgress := strings.ToLower(opts.output) != "json" &&
		!opts.debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(done, total int, dir string)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(done, total int, dir string) {
			msg := fmt.Sprintf("Measuring… %d/%d %s", done, total, filepath.Base(dir))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	folders, err := sweep.LargestFolders(ctx, sizer, root, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if opts.top > 0 && len(folders) > opts.top {
		folders = folders[:opts.top]
	}

	if opts.output == "json" {
		return PrintJSON(folders, os.Stdout)
	}

	return PrintFolders(folders, opts.unit, os.Stdout)
}

func runDupes(ctx context.Context, opts *options, root string) error {
	if err := validate(opts); err != nil {
		return err
	}

	pairs, err := findDuplicates(ctx, opts, root)
	if err != nil {
		return err
	}

	if opts.top > 0 && len(pairs) > opts.top {
		pairs = pairs[:opts.top]
	}

	if opts.output == "json" {
		return PrintJSON(pairs, os.Stdout)
	}

	return PrintPairs(pairs, opts.unit, os.Stdout)
}

func runClean(ctx context.Context, opts *options, root string) error {
	if err := validate(opts); err != nil {
		return err
	}

	pairs, err := findDuplicates(ctx, opts, root)
	if err != nil {
		return err
	}

	report := sweep.Clean(pairs, opts.dryRun)

	if opts.output == "json" {
		return PrintJSON(report, os.Stdout)
	}

	return PrintReport(report, opts.unit, os.Stdout)
}

// findDuplicates runs the duplicate finder below root and parses its output
// into pairs sorted by size, largest first.
func findDuplicates(ctx context.Context, opts *options, root string) ([]sweep.DuplicatePair, error) {
	minSizeKB, err := parseMinSize(opts.minSize)
	if err != nil {
		return nil, err
	}

	log := logger{enabled: opts.debug}
	log.printf("[debug]: running fdupes below %q, min size %d KB\n", root, minSizeKB)

	out, err := tool.Fdupes{}.Find(ctx, root, minSizeKB)
	if err != nil {
		return nil, err
	}

	pairs := sweep.ParseGroups(out)
	log.printf("[debug]: parsed %d duplicate pairs\n", len(pairs))

	return pairs, nil
}
