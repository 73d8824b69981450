package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenderpulse/internal/exporter"
	"tenderpulse/pkg/contracts/domain"
)

type stubSource struct {
	tenders []domain.Tender
}

func (s *stubSource) Tenders(domain.FilterState) []domain.Tender {
	return s.tenders
}

type recordingStore struct {
	entries   []domain.HistoryEntry
	snapshots []domain.ExportSnapshot
}

func (r *recordingStore) Append(entry domain.HistoryEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingStore) AppendSnapshot(snap domain.ExportSnapshot) error {
	r.snapshots = append(r.snapshots, snap)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func manyTenders(n int) []domain.Tender {
	out := make([]domain.Tender, n)
	for i := range out {
		out[i] = domain.Tender{Source: domain.SourceBDJobs, Title: "Consultancy Notice"}
	}
	return out
}

func TestExportSuccessRecordsOnce(t *testing.T) {
	store := &recordingStore{}
	svc := NewExportService(&stubSource{tenders: manyTenders(8)}, store, testLogger())
	fixed := time.Date(2026, 2, 15, 9, 5, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.Export(context.Background(), exporter.FormatCSV, domain.DefaultFilterState())

	require.NoError(t, err)
	assert.Equal(t, "tenders_2026-02-15_09-05.csv", result.Filename)
	assert.Equal(t, 8, result.Count)
	assert.NotEmpty(t, result.Content)

	require.Len(t, store.entries, 1)
	entry := store.entries[0]
	assert.Equal(t, fixed.UnixMilli(), entry.ID)
	assert.Equal(t, result.Filename, entry.Filename)
	assert.Equal(t, 8, entry.Count)
	assert.Equal(t, "success", entry.Status)

	require.Len(t, store.snapshots, 1)
	snap := store.snapshots[0]
	assert.Equal(t, 8, snap.Count, "snapshot count reflects the full export")
	assert.Len(t, snap.SampleRows, 5, "sample keeps only the leading rows")
}

func TestExportSmallResultKeepsAllSampleRows(t *testing.T) {
	store := &recordingStore{}
	svc := NewExportService(&stubSource{tenders: manyTenders(3)}, store, testLogger())

	_, err := svc.Export(context.Background(), exporter.FormatCSV, domain.DefaultFilterState())

	require.NoError(t, err)
	require.Len(t, store.snapshots, 1)
	assert.Len(t, store.snapshots[0].SampleRows, 3)
}

func TestExportRefusesEmptyResult(t *testing.T) {
	store := &recordingStore{}
	svc := NewExportService(&stubSource{}, store, testLogger())

	result, err := svc.Export(context.Background(), exporter.FormatXLSX, domain.DefaultFilterState())

	assert.ErrorIs(t, err, ErrNoRowsMatched)
	assert.Nil(t, result)
	assert.Empty(t, store.entries, "refused exports leave no history trace")
	assert.Empty(t, store.snapshots)
}

func TestExportRejectsUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&stubSource{tenders: manyTenders(1)}, &recordingStore{}, testLogger())

	_, err := svc.Export(context.Background(), exporter.Format("pdf"), domain.DefaultFilterState())

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExportRejectsConcurrentRun(t *testing.T) {
	store := &recordingStore{}
	svc := NewExportService(&stubSource{tenders: manyTenders(1)}, store, testLogger())
	svc.running.Store(true)

	_, err := svc.Export(context.Background(), exporter.FormatCSV, domain.DefaultFilterState())

	assert.ErrorIs(t, err, ErrExportInProgress)
	assert.Empty(t, store.entries)

	svc.running.Store(false)
	_, err = svc.Export(context.Background(), exporter.FormatCSV, domain.DefaultFilterState())
	assert.NoError(t, err, "gate releases after the previous run ends")
}

func TestExportHonorsCancelledContext(t *testing.T) {
	svc := NewExportService(&stubSource{tenders: manyTenders(1)}, &recordingStore{}, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Export(ctx, exporter.FormatCSV, domain.DefaultFilterState())

	assert.ErrorIs(t, err, context.Canceled)
}
