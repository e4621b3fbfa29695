package sweep

import (
	"path/filepath"
	"regexp"
)

// multiSavePattern matches filenames of the form "<stem> (<digits>)<ext>",
// where ext is the final dot-delimited suffix only: "report.tar (1).gz" has
// stem "report.tar" and ext ".gz".
var multiSavePattern = regexp.MustCompile(`^(.+) \(\d+\)(\.[^.]+)$`)

// MultiSaves returns the paths whose filename is a multi-save copy of a name
// that appeared earlier in the same input, in input order.
//
// A path matching the multi-save pattern is reported only when its canonical
// name (the filename with " (<N>)" removed) was introduced by an earlier
// path; otherwise it registers under its own, unreduced name. Detection is
// therefore by literal filename, not content: the original must appear in
// the same call's input with exactly the canonical name.
func MultiSaves(paths []string) []string {
	seen := make(map[string]string, len(paths))

	var matches []string

	for _, path := range paths {
		name := filepath.Base(path)

		m := multiSavePattern.FindStringSubmatch(name)
		if m == nil {
			seen[name] = path

			continue
		}

		canonical := m[1] + m[2]
		if _, ok := seen[canonical]; ok {
			matches = append(matches, path)
		} else {
			seen[name] = path
		}
	}

	return matches
}
