package sweep

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrInvalidUnit is returned by Format for any unit other than KB, MB or GB.
var ErrInvalidUnit = errors.New("invalid unit")

const kibi = 1024

// Format converts a kilobyte count to a display string in the requested
// unit. KB is rendered as an exact integer with thousands separators; MB and
// GB are divided down and rendered with two decimal places.
func Format(sizeKB int64, unit string) (string, error) {
	switch unit {
	case "KB":
		return humanize.Comma(sizeKB) + " KB", nil
	case "MB":
		return humanize.FormatFloat("#,###.##", float64(sizeKB)/kibi) + " MB", nil
	case "GB":
		return humanize.FormatFloat("#,###.##", float64(sizeKB)/(kibi*kibi)) + " GB", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}
