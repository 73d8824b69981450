package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "tenderpulse/internal/errors"
	"tenderpulse/pkg/contracts/domain"
)

// DataHandler serves filtered tender views and dataset statistics.
type DataHandler struct {
	service      DataServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDataHandler creates a data handler.
func NewDataHandler(service DataServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	return &DataHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the data routes.
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/tenders", h.GetTenders)
	r.Get("/sources", h.GetSources)
	r.Get("/stats", h.GetStats)
	r.Post("/refresh", h.Refresh)

	return r
}

// TendersResponse carries the filtered canonical rows plus the stats for
// the same filter state.
type TendersResponse struct {
	Tenders []domain.CanonicalRow `json:"tenders"`
	Stats   domain.Stats          `json:"stats"`
	Filters domain.FilterState    `json:"filters"`
}

// GetTenders returns the canonical rows surviving the query-string filters.
func (h *DataHandler) GetTenders(w http.ResponseWriter, r *http.Request) {
	f, err := filterStateFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, TendersResponse{
		Tenders: h.service.Rows(f),
		Stats:   h.service.Stats(f),
		Filters: f,
	})
}

// GetSources lists the distinct source tags currently carrying records.
func (h *DataHandler) GetSources(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"sources": h.service.Sources(),
	})
}

// GetStats returns the statistics for the query-string filters.
func (h *DataHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	f, err := filterStateFromQuery(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, h.service.Stats(f))
}

// RefreshResponse reports the outcome of a provider refresh.
type RefreshResponse struct {
	TotalTenders int    `json:"total_tenders"`
	Notice       string `json:"notice,omitempty"`
}

// Refresh triggers a provider fetch. A fetch failure is not an HTTP error:
// the cached dataset stays in effect and the failure is surfaced as a
// notice.
func (h *DataHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	data, err := h.service.Refresh(r.Context(), force)

	resp := RefreshResponse{TotalTenders: data.Len()}
	if err != nil {
		resp.Notice = "provider unreachable, serving cached data"
		h.logger.Warn("Refresh fell back to cached data",
			slog.String("error", err.Error()))
	}
	render.JSON(w, r, resp)
}

// filterStateFromQuery builds the filter state from query parameters.
// Unknown status values are rejected; everything else degrades to the
// no-op filter.
func filterStateFromQuery(r *http.Request) (domain.FilterState, error) {
	q := r.URL.Query()
	f := domain.DefaultFilterState()
	if v := q.Get("source"); v != "" {
		f.Source = v
	}
	f.SearchTerm = q.Get("search")
	f.DateFrom = q.Get("date_from")
	f.DateTo = q.Get("date_to")
	if v := q.Get("status"); v != "" {
		switch v {
		case domain.StatusFilterAll, domain.StatusFilterActive, domain.StatusFilterClosed:
			f.Status = v
		default:
			return f, apierrors.ErrValidation("status", "must be one of all, active, closed")
		}
	}
	return f, nil
}
