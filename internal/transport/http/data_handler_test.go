package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "tenderpulse/internal/errors"
	"tenderpulse/pkg/contracts/domain"
)

type mockDataService struct {
	rows       []domain.CanonicalRow
	sources    []domain.Source
	stats      domain.Stats
	refreshMap domain.SourceMap
	refreshErr error
	healthy    bool

	gotFilter domain.FilterState
	gotForce  bool
}

func (m *mockDataService) Refresh(_ context.Context, force bool) (domain.SourceMap, error) {
	m.gotForce = force
	return m.refreshMap, m.refreshErr
}

func (m *mockDataService) Rows(f domain.FilterState) []domain.CanonicalRow {
	m.gotFilter = f
	return m.rows
}

func (m *mockDataService) Sources() []domain.Source { return m.sources }

func (m *mockDataService) Stats(f domain.FilterState) domain.Stats {
	m.gotFilter = f
	return m.stats
}

func (m *mockDataService) ProviderHealthy(context.Context) bool { return m.healthy }

func handlerTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newDataTestServer(t *testing.T, svc DataServiceInterface) *httptest.Server {
	t.Helper()
	logger := handlerTestLogger()
	h := NewDataHandler(svc, logger, apierrors.NewErrorHandler(logger))
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestGetTenders(t *testing.T) {
	svc := &mockDataService{
		rows: []domain.CanonicalRow{
			{Source: "bdjobs", Title: "Supply of Laptops"},
		},
		stats: domain.Stats{TotalTenders: 5, FilteredCount: 1},
	}
	srv := newDataTestServer(t, svc)

	resp, err := http.Get(srv.URL + "/tenders?source=bdjobs&search=laptop")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body TendersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Tenders, 1)
	assert.Equal(t, "Supply of Laptops", body.Tenders[0].Title)
	assert.Equal(t, 1, body.Stats.FilteredCount)
	assert.Equal(t, "bdjobs", svc.gotFilter.Source)
	assert.Equal(t, "laptop", svc.gotFilter.SearchTerm)
}

func TestGetTendersRejectsUnknownStatus(t *testing.T) {
	srv := newDataTestServer(t, &mockDataService{})

	resp, err := http.Get(srv.URL + "/tenders?status=expired")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetSources(t *testing.T) {
	svc := &mockDataService{sources: []domain.Source{domain.SourceBDJobs, domain.SourceBPPA}}
	srv := newDataTestServer(t, svc)

	resp, err := http.Get(srv.URL + "/sources")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"bdjobs", "bppa"}, body.Sources)
}

func TestGetStats(t *testing.T) {
	svc := &mockDataService{stats: domain.Stats{TotalTenders: 12, UniqueSources: 4, FilteredCount: 3}}
	srv := newDataTestServer(t, svc)

	resp, err := http.Get(srv.URL + "/stats?status=active")
	require.NoError(t, err)
	defer resp.Body.Close()

	var stats domain.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 12, stats.TotalTenders)
	assert.Equal(t, domain.StatusFilterActive, svc.gotFilter.Status)
}

func TestRefreshSuccess(t *testing.T) {
	svc := &mockDataService{refreshMap: domain.SourceMap{
		domain.SourceUNDP: {{Source: domain.SourceUNDP, Title: "Programme Analyst"}},
	}}
	srv := newDataTestServer(t, svc)

	resp, err := http.Post(srv.URL+"/refresh?force=true", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, svc.gotForce)

	var body RefreshResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.TotalTenders)
	assert.Empty(t, body.Notice)
}

func TestRefreshFallbackIsNotAnError(t *testing.T) {
	svc := &mockDataService{
		refreshMap: domain.SourceMap{
			domain.SourceBDJobs: {{Source: domain.SourceBDJobs, Title: "Cached Notice"}},
		},
		refreshErr: errors.New("connection refused"),
	}
	srv := newDataTestServer(t, svc)

	resp, err := http.Post(srv.URL+"/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body RefreshResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.TotalTenders)
	assert.NotEmpty(t, body.Notice)
}
