package exporter

import (
	"strconv"
	"strings"
	"time"

	"tenderpulse/pkg/contracts/domain"
)

// Headers is the export column set, in order. Both the workbook and the CSV
// document use exactly this sequence.
var Headers = []string{
	"SL No",
	"Source",
	"Title",
	"Reference No",
	"Organization",
	"Publication Date",
	"Deadline/Closing",
	"Place/Country",
	"Status",
	"Amount",
	"URL",
	"Scraped At",
}

const notAvailable = "N/A"

// PrepareRows projects filtered records into the export schema. Serial
// numbers are assigned from the filtered sequence, starting at 1.
func PrepareRows(tenders []domain.Tender) []domain.ExportRow {
	rows := make([]domain.ExportRow, len(tenders))
	for i, t := range tenders {
		rows[i] = prepareRow(t, i+1)
	}
	return rows
}

func prepareRow(t domain.Tender, slNo int) domain.ExportRow {
	return domain.ExportRow{
		SLNo:            slNo,
		Source:          upperOr(string(t.Source), notAvailable),
		Title:           firstOr(notAvailable, t.Title),
		ReferenceNo:     firstOr(notAvailable, t.ReferenceNo, t.RefNo, t.ProjectID),
		Organization:    firstOr(notAvailable, t.Organization, t.ProcuringEntity),
		PublicationDate: firstOr(notAvailable, t.PublicationDate, t.Posted, t.Date),
		DeadlineClosing: firstOr(notAvailable, t.Deadline, t.ClosingDate),
		PlaceCountry:    firstOr(notAvailable, t.Place, t.Country),
		Status:          firstOr("Active", t.Status),
		Amount:          firstOr(notAvailable, t.Amount),
		URL:             firstOr(notAvailable, t.DetailURL, t.Link, t.URL),
		ScrapedAt:       formatScrapedAt(t.ScrapedAt),
	}
}

// Values returns the row's cells in header order.
func Values(r domain.ExportRow) []string {
	return []string{
		strconv.Itoa(r.SLNo),
		r.Source,
		r.Title,
		r.ReferenceNo,
		r.Organization,
		r.PublicationDate,
		r.DeadlineClosing,
		r.PlaceCountry,
		r.Status,
		r.Amount,
		r.URL,
		r.ScrapedAt,
	}
}

func firstOr(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}

func upperOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return strings.ToUpper(value)
}

// formatScrapedAt renders the scrape timestamp as "YYYY-MM-DD HH:mm".
// Missing or unparsable values degrade to N/A.
func formatScrapedAt(raw string) string {
	if raw == "" {
		return notAvailable
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("2006-01-02 15:04")
		}
	}
	return notAvailable
}
