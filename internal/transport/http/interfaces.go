package http

import (
	"context"

	"tenderpulse/internal/exporter"
	"tenderpulse/internal/services"
	"tenderpulse/pkg/contracts/domain"
)

// DataServiceInterface is the data-service surface the handlers depend on.
type DataServiceInterface interface {
	Refresh(ctx context.Context, force bool) (domain.SourceMap, error)
	Rows(f domain.FilterState) []domain.CanonicalRow
	Sources() []domain.Source
	Stats(f domain.FilterState) domain.Stats
	ProviderHealthy(ctx context.Context) bool
}

// ExportServiceInterface is the export-service surface the handlers depend on.
type ExportServiceInterface interface {
	Export(ctx context.Context, format exporter.Format, f domain.FilterState) (*services.ExportResult, error)
}

// HistoryReader is the read-only history surface the handlers depend on.
type HistoryReader interface {
	Entries() []domain.HistoryEntry
	RecentSnapshots() []domain.ExportSnapshot
}
