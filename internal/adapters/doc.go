// Package adapters normalizes raw per-source tender records into canonical
// display/export rows.
//
// Each known source tag maps to one pure adapter function. Adapters never
// fail: missing or malformed fields degrade to fallback literals. Tags
// without a registered adapter go through a generic default adapter that
// uses the uppercased raw tag for labeling and produces no badges.
package adapters
