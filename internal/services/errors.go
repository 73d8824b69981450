package services

import "errors"

var (
	// ErrNoRowsMatched is returned when an export is refused because the
	// active filters match zero records. No file is produced and no
	// history entry is appended.
	ErrNoRowsMatched = errors.New("no records match the current filters")

	// ErrExportInProgress enforces at-most-one concurrent export.
	ErrExportInProgress = errors.New("an export is already in progress")

	// ErrUnsupportedFormat is returned for formats other than xlsx or csv.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
