package exporter

import (
	"fmt"
	"time"

	"tenderpulse/pkg/contracts/domain"
)

// Format identifies an export serialization.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// Valid reports whether the format is one of the supported serializations.
func (f Format) Valid() bool {
	return f == FormatXLSX || f == FormatCSV
}

// ContentType returns the MIME type for download responses.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename builds the deterministic export filename:
// tenders_<YYYY-MM-DD_HH-mm>[_<source>].<ext>. The source suffix appears
// only when the source filter is narrowed to a single tag.
func Filename(now time.Time, f domain.FilterState, format Format) string {
	suffix := ""
	if f.Source != "" && f.Source != domain.FilterAllSources {
		suffix = "_" + f.Source
	}
	return fmt.Sprintf("tenders_%s%s.%s", now.Format("2006-01-02_15-04"), suffix, format)
}
