package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// options holds one subcommand's flag values. Every subcommand owns its own
// instance: flag registration writes the default into the bound field, so a
// shared struct would let one command's defaults clobber another's.
type options struct {
	top     int
	unit    string
	output  string
	minSize string
	sizer   string
	dryRun  bool
	debug   bool
}

// NewRootCommand builds the dupsweep command tree.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "dupsweep",
		Short: "Inventory folder sizes and sweep browser multi-save duplicates",
		Long: heredoc.Doc(`
			dupsweep inspects a directory tree for disk usage and redundant files.

			It measures the size of every immediate subdirectory, lists duplicate
			files found by fdupes, and removes the narrow class of "multi-save"
			copies a browser produces when it avoids overwriting an existing
			download ("report (1).pdf" saved next to an identical "report.pdf").

			All commands default to the home directory when no path is given.
		`),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Bool("debug", false, "Enable debug output")

	root.AddCommand(
		newFoldersCommand(),
		newDupesCommand(),
		newCleanCommand(),
	)

	return root
}

func newFoldersCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "folders [path]",
		Short: "List the largest immediate subdirectories",
		Long: heredoc.Doc(`
			Measure every immediate subdirectory of the given path and list them
			by size, largest first. Folders that cannot be measured (typically
			permission errors) are kept in the listing with an unknown size.

			Sizing shells out to du by default; --sizer walk selects a native
			traversal for hosts without du.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.debug, _ = cmd.Flags().GetBool("debug")

			root, err := pathArg(args)
			if err != nil {
				return err
			}

			return runFolders(cmd.Context(), opts, root)
		},
	}

	cmd.Flags().IntVarP(&opts.top, "top", "t", 10, "Number of entries to display")
	cmd.Flags().StringVar(&opts.unit, "unit", "GB", "Display unit: KB, MB or GB")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().StringVar(&opts.sizer, "sizer", "auto", "Size measurement: du, walk or auto")

	return cmd
}

func newDupesCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dupes [path]",
		Short: "List duplicate files found below a path",
		Long: heredoc.Doc(`
			Run fdupes recursively below the given path and list duplicate
			pairs, largest first. Each group of N identical files is reported
			as N-1 pairs against the group's first-listed file.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.debug, _ = cmd.Flags().GetBool("debug")

			root, err := pathArg(args)
			if err != nil {
				return err
			}

			return runDupes(cmd.Context(), opts, root)
		},
	}

	cmd.Flags().IntVarP(&opts.top, "top", "t", 10, "Number of pairs to display")
	cmd.Flags().StringVar(&opts.unit, "unit", "MB", "Display unit: KB, MB or GB")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().StringVar(&opts.minSize, "min-size", "100KiB", "Minimum duplicate file size (e.g. 500KiB, 1MiB; KB/MB are 1000-based)")

	return cmd
}

func newCleanCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Delete multi-save copies of duplicated files",
		Long: heredoc.Doc(`
			Find duplicate files below the given path and delete the ones that
			are multi-save copies of an identically-named original in the same
			duplicate group. Only files named "<name> (<N>)<ext>" whose literal
			original "<name><ext>" carries the same content are removed.

			Deletion is irreversible; use --dry-run to preview.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.debug, _ = cmd.Flags().GetBool("debug")

			root, err := pathArg(args)
			if err != nil {
				return err
			}

			return runClean(cmd.Context(), opts, root)
		},
	}

	cmd.Flags().StringVar(&opts.unit, "unit", "MB", "Display unit: KB, MB or GB")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().StringVar(&opts.minSize, "min-size", "100KiB", "Minimum duplicate file size (e.g. 500KiB, 1MiB; KB/MB are 1000-based)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview deletions without removing anything")

	return cmd
}
