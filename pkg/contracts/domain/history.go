package domain

import "time"

// HistoryEntry is a durable audit record of one completed export. Entries
// are created only on success and never mutated afterwards.
type HistoryEntry struct {
	ID        int64       `json:"id"`
	Filename  string      `json:"filename"`
	Timestamp time.Time   `json:"timestamp"`
	Filters   FilterState `json:"filters"`
	Count     int         `json:"count"`
	Status    string      `json:"status"`
}

// ExportSnapshot keeps the first few rows of a completed export for
// inspection. Snapshots are capped independently of the history log.
type ExportSnapshot struct {
	Filename   string      `json:"filename"`
	Timestamp  time.Time   `json:"timestamp"`
	Count      int         `json:"count"`
	Filters    FilterState `json:"filters"`
	SampleRows []ExportRow `json:"data"`
}

// ExportRow is one record of the fixed export projection. Field order here
// matches the export column order.
type ExportRow struct {
	SLNo            int    `json:"sl_no"`
	Source          string `json:"source"`
	Title           string `json:"title"`
	ReferenceNo     string `json:"reference_no"`
	Organization    string `json:"organization"`
	PublicationDate string `json:"publication_date"`
	DeadlineClosing string `json:"deadline_closing"`
	PlaceCountry    string `json:"place_country"`
	Status          string `json:"status"`
	Amount          string `json:"amount"`
	URL             string `json:"url"`
	ScrapedAt       string `json:"scraped_at"`
}
