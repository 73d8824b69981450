package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenderpulse/pkg/contracts/domain"
)

func TestPrepareRowsProjection(t *testing.T) {
	rows := PrepareRows([]domain.Tender{
		{
			Source:          domain.SourceBPPA,
			Title:           "Selection of a Firm for GAP Information Website Development",
			ReferenceNo:     "12.01.0000.924.040.07.0044.26-120",
			ProcuringEntity: "Project Director, TARAPS",
			PublicationDate: "15/02/2026",
			ClosingDate:     "02/03/2026",
			Place:           "Dhaka",
			DetailURL:       "https://bppa.example/tenders/44",
			ScrapedAt:       "2026-02-16T08:45:00",
		},
	})

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 1, row.SLNo)
	assert.Equal(t, "BPPA", row.Source)
	assert.Equal(t, "Selection of a Firm for GAP Information Website Development", row.Title)
	assert.Equal(t, "12.01.0000.924.040.07.0044.26-120", row.ReferenceNo)
	assert.Equal(t, "Project Director, TARAPS", row.Organization)
	assert.Equal(t, "15/02/2026", row.PublicationDate)
	assert.Equal(t, "02/03/2026", row.DeadlineClosing)
	assert.Equal(t, "Dhaka", row.PlaceCountry)
	assert.Equal(t, "Active", row.Status, "absent status defaults to Active at export time")
	assert.Equal(t, "N/A", row.Amount)
	assert.Equal(t, "https://bppa.example/tenders/44", row.URL)
	assert.Equal(t, "2026-02-16 08:45", row.ScrapedAt)
}

func TestPrepareRowsFallbacks(t *testing.T) {
	rows := PrepareRows([]domain.Tender{{Source: domain.SourceUNGM}})

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "UNGM", row.Source)
	assert.Equal(t, "N/A", row.ReferenceNo)
	assert.Equal(t, "N/A", row.Organization)
	assert.Equal(t, "N/A", row.PublicationDate)
	assert.Equal(t, "N/A", row.DeadlineClosing)
	assert.Equal(t, "N/A", row.PlaceCountry)
	assert.Equal(t, "N/A", row.Amount)
	assert.Equal(t, "N/A", row.URL)
	assert.Equal(t, "N/A", row.ScrapedAt)
}

func TestPrepareRowsReassignsSerialNumbers(t *testing.T) {
	// The input is already filtered; serial numbers follow the filtered
	// sequence, not any original index.
	rows := PrepareRows([]domain.Tender{
		{Source: domain.SourceUNDP, Title: "third in the raw set"},
		{Source: domain.SourceBPPA, Title: "seventh in the raw set"},
		{Source: domain.SourceCare, Title: "ninth in the raw set"},
	})

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.SLNo)
	}
}

func TestValuesMatchesHeaderOrder(t *testing.T) {
	rows := PrepareRows([]domain.Tender{{Source: domain.SourceBDJobs, Title: "x"}})
	values := Values(rows[0])

	require.Len(t, values, len(Headers))
	assert.Equal(t, "1", values[0])
	assert.Equal(t, "BDJOBS", values[1])
	assert.Equal(t, "x", values[2])
}
