// Package exporter serializes filtered tender records into downloadable
// documents.
//
// Three pieces: the fixed-column export projection (PrepareRows), the xlsx
// workbook writer built on excelize, and the simple quoted CSV writer. The
// CSV shape intentionally stays one-quoted-field-per-column with no embedded
// escaping so existing round-trip consumers keep working.
package exporter
