package domain

// Status filter values. FilterAll disables the status dimension.
const (
	StatusFilterAll    = "all"
	StatusFilterActive = "active"
	StatusFilterClosed = "closed"
)

// FilterAllSources disables the source dimension.
const FilterAllSources = "all"

// FilterState captures the active filter dimensions. It is an immutable
// value: callers replace the whole struct on every edit rather than
// mutating fields in place.
type FilterState struct {
	Source     string `json:"source"`
	SearchTerm string `json:"search_term"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
	Status     string `json:"status"`
}

// DefaultFilterState returns the no-op filter: every record matches.
func DefaultFilterState() FilterState {
	return FilterState{
		Source: FilterAllSources,
		Status: StatusFilterAll,
	}
}

// IsZero reports whether every dimension is a no-op.
func (f FilterState) IsZero() bool {
	return (f.Source == "" || f.Source == FilterAllSources) &&
		f.SearchTerm == "" &&
		f.DateFrom == "" &&
		f.DateTo == "" &&
		(f.Status == "" || f.Status == StatusFilterAll)
}
