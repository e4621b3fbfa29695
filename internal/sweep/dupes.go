package sweep

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DuplicatePair pairs one duplicate file against the first-listed member of
// its content-identical group. A group of N files yields N-1 pairs, all
// sharing the group's size.
type DuplicatePair struct {
	// Original is the group's first-listed file.
	Original string `json:"original"`
	// Duplicate is another member with identical content.
	Duplicate string `json:"duplicate"`
	// SizeKB is the per-file size in kilobytes.
	SizeKB int64 `json:"size_kb"`
}

// headerSize extracts the byte count from a group header line.
var headerSize = regexp.MustCompile(`(\d+) bytes`)

// ParseGroups parses the grouped output of the duplicate finder into pairs
// sorted by size, largest first.
//
// The input is line oriented: a header line starts with a digit and carries
// the group's byte size as "<N> bytes"; every following non-blank line is one
// member path. A header flushes the group collected above it, so a group's
// pairs are always emitted after its own header has set the size. Parsing is
// best effort: a header whose size cannot be extracted keeps the previous
// size value.
func ParseGroups(output string) []DuplicatePair {
	var (
		pairs  []DuplicatePair
		group  []string
		sizeKB int64
	)

	flush := func() {
		for i := 1; i < len(group); i++ {
			pairs = append(pairs, DuplicatePair{
				Original:  group[0],
				Duplicate: group[i],
				SizeKB:    sizeKB,
			})
		}

		group = group[:0]
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line[0] >= '0' && line[0] <= '9' {
			flush()

			if m := headerSize.FindStringSubmatch(line); m != nil {
				bytes, _ := strconv.ParseInt(m[1], 10, 64)
				sizeKB = bytes / 1024
			}

			continue
		}

		group = append(group, line)
	}

	flush()

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].SizeKB > pairs[j].SizeKB
	})

	return pairs
}
