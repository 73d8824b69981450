// Package stats derives summary counts from the raw dataset and the active
// filter state.
package stats

import (
	"time"

	"tenderpulse/internal/filter"
	"tenderpulse/pkg/contracts/domain"
)

// Aggregator computes dataset statistics. Computation is synchronous and
// idempotent; there is no caching beyond the caller's own.
type Aggregator struct {
	engine *filter.Engine
}

// NewAggregator creates a stats aggregator backed by the given filter engine.
func NewAggregator(engine *filter.Engine) *Aggregator {
	return &Aggregator{engine: engine}
}

// Compute derives the stats for the raw dataset under the active filters.
// TotalTenders and UniqueSources ignore the filters; FilteredCount applies
// them. historyLength feeds the downloads counter and lastUpdated is the
// timestamp of the last successful fetch (nil when never fetched).
func (a *Aggregator) Compute(data domain.SourceMap, f domain.FilterState, historyLength int, lastUpdated *time.Time) domain.Stats {
	flattened := data.Flatten()
	return domain.Stats{
		TotalTenders:   data.Len(),
		UniqueSources:  countDistinctSources(flattened),
		FilteredCount:  len(a.engine.Apply(flattened, f)),
		TotalDownloads: historyLength,
		LastUpdated:    lastUpdated,
	}
}

// countDistinctSources counts the distinct tags carried by the records
// themselves, not the map keys, so empty source buckets never inflate it.
func countDistinctSources(tenders []domain.Tender) int {
	seen := make(map[domain.Source]struct{}, 8)
	for _, t := range tenders {
		seen[t.Source] = struct{}{}
	}
	return len(seen)
}
