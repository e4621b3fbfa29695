package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		kb   int64
		unit string
		want string
	}{
		{"zero KB", 0, "KB", "0 KB"},
		{"KB thousands separators", 1234567, "KB", "1,234,567 KB"},
		{"exact half MB", 1536, "MB", "1.50 MB"},
		{"MB two decimals", 2000, "MB", "1.95 MB"},
		{"exact half GB", 1572864, "GB", "1.50 GB"},
		{"GB rounding", 3300000, "GB", "3.15 GB"},
		{"GB thousands separators", 1610612736, "GB", "1,536.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.kb, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInvalidUnit(t *testing.T) {
	for _, unit := range []string{"TB", "kb", "bytes", ""} {
		_, err := Format(10, unit)
		assert.ErrorIs(t, err, ErrInvalidUnit, "unit %q", unit)
	}
}
