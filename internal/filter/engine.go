// Package filter composes the source, search, date-range and status
// predicates into a single AND-combined match over raw tender records.
package filter

import (
	"strings"
	"time"

	"tenderpulse/pkg/contracts/domain"
)

// dateLayouts is the accepted record-date formats, tried in priority order.
// Day-first wins over ISO for ambiguous strings; this mirrors the provider's
// dominant dd/mm/yyyy convention and is a known precision gap for strings
// that parse under both.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
}

// Engine evaluates filter states against raw records. It is stateless and
// safe for concurrent use.
type Engine struct{}

// NewEngine creates a filter engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Apply returns the records matching the filter state, preserving input
// order. The input slice is never mutated.
func (e *Engine) Apply(tenders []domain.Tender, f domain.FilterState) []domain.Tender {
	if f.IsZero() {
		out := make([]domain.Tender, len(tenders))
		copy(out, tenders)
		return out
	}
	out := make([]domain.Tender, 0, len(tenders))
	for _, t := range tenders {
		if e.Matches(t, f) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether a single record passes every active dimension.
func (e *Engine) Matches(t domain.Tender, f domain.FilterState) bool {
	return matchSource(t, f) &&
		matchSearch(t, f) &&
		matchDateRange(t, f) &&
		matchStatus(t, f)
}

func matchSource(t domain.Tender, f domain.FilterState) bool {
	if f.Source == "" || f.Source == domain.FilterAllSources {
		return true
	}
	return string(t.Source) == f.Source
}

// matchSearch does a case-insensitive substring match against the title,
// the reference fields and the organization fields. Any hit matches.
func matchSearch(t domain.Tender, f domain.FilterState) bool {
	if f.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(f.SearchTerm)
	for _, candidate := range []string{
		t.Title,
		t.ReferenceNo, t.RefNo, t.ProjectID,
		t.Organization, t.ProcuringEntity,
	} {
		if candidate != "" && strings.Contains(strings.ToLower(candidate), term) {
			return true
		}
	}
	return false
}

// matchDateRange compares the record's resolved date against the inclusive
// [from, to] bounds. A record whose date is absent or unparsable is never
// excluded on date grounds.
func matchDateRange(t domain.Tender, f domain.FilterState) bool {
	if f.DateFrom == "" && f.DateTo == "" {
		return true
	}
	recordDate, ok := parseRecordDate(recordDateValue(t))
	if !ok {
		return true
	}
	if f.DateFrom != "" {
		if from, ok := parseBound(f.DateFrom); ok && recordDate.Before(from) {
			return false
		}
	}
	if f.DateTo != "" {
		if to, ok := parseBound(f.DateTo); ok && recordDate.After(to) {
			return false
		}
	}
	return true
}

// recordDateValue resolves the single comparison date for a record.
func recordDateValue(t domain.Tender) string {
	switch {
	case t.PublicationDate != "":
		return t.PublicationDate
	case t.Posted != "":
		return t.Posted
	default:
		return t.Date
	}
}

func parseRecordDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseBound parses a filter bound. Bounds come from date inputs and are
// ISO formatted, but the record layouts are accepted too.
func parseBound(value string) (time.Time, bool) {
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts, true
	}
	return parseRecordDate(value)
}

// matchStatus applies the status dimension. "active" requires a status
// field case-insensitively equal to "active"; "closed" requires a status
// field present and not "active". Records without a status field match
// neither.
func matchStatus(t domain.Tender, f domain.FilterState) bool {
	switch f.Status {
	case "", domain.StatusFilterAll:
		return true
	case domain.StatusFilterActive:
		return strings.EqualFold(t.Status, "active")
	case domain.StatusFilterClosed:
		return t.Status != "" && !strings.EqualFold(t.Status, "active")
	default:
		return true
	}
}
