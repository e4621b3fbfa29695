package sweep

import "os"

// Removal records one multi-save duplicate that was removed, or that would
// be removed in a dry run.
type Removal struct {
	// Path is the removed file.
	Path string `json:"path"`
	// Bytes is the file's size as reported by the filesystem at removal time.
	Bytes int64 `json:"bytes"`
}

// Failure records a multi-save duplicate that could not be removed.
type Failure struct {
	// Path is the file that survived.
	Path string `json:"path"`
	// Reason is the underlying error text.
	Reason string `json:"reason"`
}

// Report summarizes one cleanup pass.
type Report struct {
	// Removed lists every deleted (or planned) multi-save duplicate.
	Removed []Removal `json:"removed"`
	// Failed lists paths whose removal failed.
	Failed []Failure `json:"failed,omitempty"`
	// FreedBytes is the exact sum of removed file sizes in bytes.
	FreedBytes int64 `json:"freed_bytes"`
	// DryRun indicates that no file was actually deleted.
	DryRun bool `json:"dry_run"`
}

// Clean walks the duplicate pairs in order, classifies each pair's two
// members with MultiSaves and removes every reported multi-save copy.
//
// Freed bytes are taken from the filesystem at removal time; a path that
// fails to stat or delete is recorded under Failed and contributes nothing
// to the total, and the pass continues. Deletion is irreversible and
// non-transactional: an interrupted pass leaves earlier pairs cleaned and
// later ones untouched.
func Clean(pairs []DuplicatePair, dryRun bool) Report {
	report := Report{DryRun: dryRun}

	for _, pair := range pairs {
		for _, path := range MultiSaves([]string{pair.Original, pair.Duplicate}) {
			info, err := os.Stat(path)
			if err != nil {
				report.Failed = append(report.Failed, Failure{Path: path, Reason: err.Error()})

				continue
			}

			if !dryRun {
				if err := os.Remove(path); err != nil {
					report.Failed = append(report.Failed, Failure{Path: path, Reason: err.Error()})

					continue
				}
			}

			report.Removed = append(report.Removed, Removal{Path: path, Bytes: info.Size()})
			report.FreedBytes += info.Size()
		}
	}

	return report
}
