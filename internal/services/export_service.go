package services

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"tenderpulse/internal/exporter"
	"tenderpulse/internal/history"
	"tenderpulse/internal/metrics"
	"tenderpulse/pkg/contracts/domain"
)

// TenderSource supplies the filtered raw records an export serializes.
type TenderSource interface {
	Tenders(f domain.FilterState) []domain.Tender
}

// HistoryRecorder persists the audit trail of completed exports.
type HistoryRecorder interface {
	Append(entry domain.HistoryEntry) error
	AppendSnapshot(snap domain.ExportSnapshot) error
}

// ExportResult is one produced document plus its download metadata.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
	Count       int
}

// ExportService serializes filtered datasets and records each success in
// the history store. At most one export runs at a time.
type ExportService struct {
	source  TenderSource
	store   HistoryRecorder
	logger  *slog.Logger
	now     func() time.Time
	running atomic.Bool
}

// NewExportService creates an export service.
func NewExportService(source TenderSource, store HistoryRecorder, logger *slog.Logger) *ExportService {
	return &ExportService{
		source: source,
		store:  store,
		logger: logger.With(slog.String("component", "export_service")),
		now:    time.Now,
	}
}

// Export serializes the records matching the filter state into the
// requested format. Zero matching rows refuses the export with
// ErrNoRowsMatched: no document is produced and nothing is appended to the
// history. On success exactly one history entry and one snapshot are
// recorded.
func (s *ExportService) Export(ctx context.Context, format exporter.Format, f domain.FilterState) (*ExportResult, error) {
	if !format.Valid() {
		return nil, ErrUnsupportedFormat
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer s.running.Store(false)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := exporter.PrepareRows(s.source.Tenders(f))
	if len(rows) == 0 {
		metrics.ExportsTotal.WithLabelValues(string(format), "empty").Inc()
		return nil, ErrNoRowsMatched
	}

	var (
		content []byte
		err     error
	)
	switch format {
	case exporter.FormatXLSX:
		content, err = exporter.ToWorkbook(rows)
	case exporter.FormatCSV:
		content = []byte(exporter.ToDelimitedText(rows))
	}
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(string(format), "error").Inc()
		return nil, err
	}

	now := s.now()
	filename := exporter.Filename(now, f, format)
	s.record(now, filename, f, rows)

	metrics.ExportsTotal.WithLabelValues(string(format), "success").Inc()
	metrics.ExportedRows.Add(float64(len(rows)))

	s.logger.Info("Export completed",
		slog.String("filename", filename),
		slog.String("format", string(format)),
		slog.Int("row_count", len(rows)))

	return &ExportResult{
		Filename:    filename,
		ContentType: format.ContentType(),
		Content:     content,
		Count:       len(rows),
	}, nil
}

// record appends the history entry and the sample snapshot. Persistence
// failures are logged, not propagated: the caller already holds a valid
// document.
func (s *ExportService) record(now time.Time, filename string, f domain.FilterState, rows []domain.ExportRow) {
	entry := domain.HistoryEntry{
		ID:        now.UnixMilli(),
		Filename:  filename,
		Timestamp: now,
		Filters:   f,
		Count:     len(rows),
		Status:    "success",
	}
	if err := s.store.Append(entry); err != nil {
		s.logger.Error("Failed to append history entry", slog.String("error", err.Error()))
	}

	sample := rows
	if len(sample) > history.SnapshotSampleRows {
		sample = sample[:history.SnapshotSampleRows]
	}
	snap := domain.ExportSnapshot{
		Filename:   filename,
		Timestamp:  now,
		Count:      len(rows),
		Filters:    f,
		SampleRows: append([]domain.ExportRow(nil), sample...),
	}
	if err := s.store.AppendSnapshot(snap); err != nil {
		s.logger.Error("Failed to append export snapshot", slog.String("error", err.Error()))
	}
}
