// Package sweep implements the disk cleanup pipelines: folder size
// inventory, duplicate group parsing, and removal of browser "multi-save"
// copies ("report (1).pdf" saved next to an identical "report.pdf").
//
// External tools do the measuring and matching; this package owns the pure
// transformations over their output and the deletion pass.
package sweep
