package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tenderpulse/pkg/contracts/domain"
)

func TestFilename(t *testing.T) {
	now := time.Date(2026, 2, 15, 9, 5, 30, 0, time.UTC)

	tests := []struct {
		name   string
		filter domain.FilterState
		format Format
		want   string
	}{
		{
			name:   "no source filter",
			filter: domain.DefaultFilterState(),
			format: FormatXLSX,
			want:   "tenders_2026-02-15_09-05.xlsx",
		},
		{
			name:   "source filter adds suffix",
			filter: domain.FilterState{Source: "bdjobs"},
			format: FormatXLSX,
			want:   "tenders_2026-02-15_09-05_bdjobs.xlsx",
		},
		{
			name:   "csv extension",
			filter: domain.FilterState{Source: "all"},
			format: FormatCSV,
			want:   "tenders_2026-02-15_09-05.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(now, tt.filter, tt.format))
		})
	}
}

func TestFormatValid(t *testing.T) {
	assert.True(t, FormatXLSX.Valid())
	assert.True(t, FormatCSV.Valid())
	assert.False(t, Format("pdf").Valid())
	assert.False(t, Format("").Valid())
}
