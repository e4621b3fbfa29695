package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dupsweep/internal/sweep"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs v in indented JSON format.
func PrintJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintFolders outputs the folder inventory as an aligned table. Folders
// with an unknown size render a "?" in place of the converted size.
func PrintFolders(folders []sweep.FolderSize, unit string, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', tabwriter.AlignRight)

	for _, folder := range folders {
		if folder.SizeKB == sweep.SizeUnknown {
			fmt.Fprintf(w, "?:\t%s\n", folder.Path)

			continue
		}

		size, err := sweep.Format(folder.SizeKB, unit)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s:\t%s\n", size, folder.Path)
	}

	return w.Flush()
}

// PrintPairs outputs duplicate pairs, one block per pair.
func PrintPairs(pairs []sweep.DuplicatePair, unit string, writer io.Writer) error {
	for _, pair := range pairs {
		size, err := sweep.Format(pair.SizeKB, unit)
		if err != nil {
			return err
		}

		fmt.Fprintf(writer, "%10s:\n\t%s\n\t%s\n", size, pair.Original, pair.Duplicate)
	}

	return nil
}

// PrintReport outputs the cleanup report: one line per removed or failed
// path, then the freed total in the requested unit.
func PrintReport(report sweep.Report, unit string, writer io.Writer) error {
	verb := "Deleted"
	if report.DryRun {
		verb = "Would delete"
	}

	for _, removal := range report.Removed {
		fmt.Fprintf(writer, "%s %s (%s)\n", verb, removal.Path, humanize.IBytes(uint64(removal.Bytes))) //nolint:gosec // Bytes is always positive
	}

	for _, failure := range report.Failed {
		fmt.Fprintf(writer, "Failed to delete %s: %s\n", failure.Path, failure.Reason)
	}

	freed, err := sweep.Format(report.FreedBytes/1024, unit)
	if err != nil {
		return err
	}

	fmt.Fprintf(writer, "%s %s\n", verb, freed)

	return nil
}
