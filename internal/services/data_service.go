package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"tenderpulse/internal/adapters"
	"tenderpulse/internal/filter"
	"tenderpulse/internal/metrics"
	"tenderpulse/internal/provider"
	"tenderpulse/internal/stats"
	"tenderpulse/pkg/contracts/domain"
)

// ScrapeClient is the slice of the provider client the data service needs.
type ScrapeClient interface {
	ScrapeAll(ctx context.Context, force bool) (*provider.ScrapeAllResponse, error)
	Health(ctx context.Context) (provider.HealthResponse, error)
}

// HistoryLength exposes the audit-log length for the downloads counter.
type HistoryLength interface {
	Len() int
}

// DataService owns the current raw dataset and its derived views. Raw
// records and canonical rows are ephemeral: they are recomputed from the
// cached payload on every call, while the payload itself is replaced
// wholesale on each successful fetch.
type DataService struct {
	client     ScrapeClient
	registry   *adapters.Registry
	engine     *filter.Engine
	aggregator *stats.Aggregator
	historyLen HistoryLength
	logger     *slog.Logger

	group singleflight.Group

	mu          sync.RWMutex
	data        domain.SourceMap
	lastUpdated *time.Time
}

// NewDataService creates a data service seeded with the built-in sample
// dataset so derived views work before the first successful fetch.
func NewDataService(client ScrapeClient, historyLen HistoryLength, logger *slog.Logger) *DataService {
	engine := filter.NewEngine()
	return &DataService{
		client:     client,
		registry:   adapters.NewRegistry(),
		engine:     engine,
		aggregator: stats.NewAggregator(engine),
		historyLen: historyLen,
		logger:     logger.With(slog.String("component", "data_service")),
		data:       provider.SampleData(),
	}
}

// Refresh fetches the aggregated record map from the provider. Concurrent
// callers share one in-flight fetch. On failure the previously cached
// payload (initially the sample dataset) stays in effect and the fetch
// error is returned as a non-fatal notice; the returned map is always
// usable.
func (s *DataService) Refresh(ctx context.Context, force bool) (domain.SourceMap, error) {
	result, err, shared := s.group.Do("scrape_all", func() (interface{}, error) {
		resp, err := s.client.ScrapeAll(ctx, force)
		if err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Warn("Provider fetch failed, keeping cached data",
			slog.String("error", err.Error()),
			slog.Bool("shared", shared))
		metrics.FetchesTotal.WithLabelValues(s.fallbackOutcome()).Inc()
		return s.Data(), err
	}

	resp := result.(*provider.ScrapeAllResponse)
	now := time.Now()
	if ts, parseErr := time.Parse(time.RFC3339Nano, resp.Timestamp); parseErr == nil {
		now = ts
	}

	s.mu.Lock()
	s.data = resp.Data
	s.lastUpdated = &now
	s.mu.Unlock()

	metrics.FetchesTotal.WithLabelValues("success").Inc()
	s.logger.Info("Dataset refreshed",
		slog.Int("total_tenders", resp.Data.Len()),
		slog.Int("sources", len(resp.Data.Sources())),
		slog.Bool("forced", force),
		slog.Bool("shared", shared))

	return resp.Data, nil
}

func (s *DataService) fallbackOutcome() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastUpdated != nil {
		return "fallback_cache"
	}
	return "fallback_sample"
}

// Data returns the current raw payload. Callers must treat it as read-only.
func (s *DataService) Data() domain.SourceMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// LastUpdated returns the timestamp of the last successful fetch, nil when
// only fallback data has ever been served.
func (s *DataService) LastUpdated() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Tenders returns the flattened raw records surviving the filter state, in
// stable source order.
func (s *DataService) Tenders(f domain.FilterState) []domain.Tender {
	return s.engine.Apply(s.Data().Flatten(), f)
}

// Rows returns the filtered records projected to canonical display rows.
func (s *DataService) Rows(f domain.FilterState) []domain.CanonicalRow {
	return s.registry.AdaptAll(s.Tenders(f))
}

// Sources returns the distinct source tags currently carrying records.
func (s *DataService) Sources() []domain.Source {
	return s.Data().Sources()
}

// Stats recomputes the dataset statistics under the filter state.
func (s *DataService) Stats(f domain.FilterState) domain.Stats {
	historyLen := 0
	if s.historyLen != nil {
		historyLen = s.historyLen.Len()
	}
	return s.aggregator.Compute(s.Data(), f, historyLen, s.LastUpdated())
}

// ProviderHealthy checks provider liveness with a single attempt.
func (s *DataService) ProviderHealthy(ctx context.Context) bool {
	health, err := s.client.Health(ctx)
	if err != nil {
		s.logger.Debug("Provider health check failed", slog.String("error", err.Error()))
		return false
	}
	return health.Healthy()
}
