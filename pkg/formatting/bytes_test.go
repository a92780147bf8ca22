package formatting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/floorplan/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare bytes", "1024", 1024, false},
		{"kilobytes", "1KB", 1024, false},
		{"megabytes", "20MB", 20 * 1024 * 1024, false},
		{"lowercase unit", "10mb", 10 * 1024 * 1024, false},
		{"with space", "1 MB", 1024 * 1024, false},
		{"surrounding whitespace", "  4MB ", 4 * 1024 * 1024, false},
		{"empty string", "", 0, true},
		{"unknown unit", "50XX", 0, true},
		{"no number", "MB", 0, true},
		{"negative", "-5MB", 0, true},
		{"fractional", "1.5KB", 1536, false},
		{"two dots", "1.2.3MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, formatting.ErrInvalidSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 1, "0 B"},
		{500, 1, "500 B"},
		{1023, 2, "1023 B"},
		{1024, 0, "1 KB"},
		{1536 * 1024, 1, "1.5 MB"},
		{2 * 1024 * 1024, 1, "2.0 MB"},
		{1024, -1, "1 KB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatting.FormatBytes(tt.n, tt.precision))
	}
}
