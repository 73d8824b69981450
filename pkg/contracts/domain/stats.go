package domain

import "time"

// Stats summarizes the current dataset against the active filters.
type Stats struct {
	TotalTenders   int        `json:"total_tenders"`
	UniqueSources  int        `json:"unique_sources"`
	FilteredCount  int        `json:"filtered_count"`
	TotalDownloads int        `json:"total_downloads"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
}
