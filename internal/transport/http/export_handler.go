package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "tenderpulse/internal/errors"
	"tenderpulse/internal/exporter"
	"tenderpulse/internal/services"
	"tenderpulse/pkg/contracts/domain"
)

// ExportHandler serves export downloads and the export audit history.
type ExportHandler struct {
	service      ExportServiceInterface
	history      HistoryReader
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewExportHandler creates an export handler.
func NewExportHandler(service ExportServiceInterface, history HistoryReader, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ExportHandler {
	return &ExportHandler{
		service:      service,
		history:      history,
		logger:       logger.With(slog.String("component", "export_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the export routes.
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/export", h.Export)
	r.With(render.SetContentType(render.ContentTypeJSON)).
		Get("/history", h.GetHistory)
	r.With(render.SetContentType(render.ContentTypeJSON)).
		Get("/history/snapshots", h.GetSnapshots)

	return r
}

// ExportRequest is the POST /export payload.
type ExportRequest struct {
	Format  string             `json:"format" validate:"required,oneof=xlsx csv"`
	Filters domain.FilterState `json:"filters"`
}

// Bind implements render.Binder; it normalizes the filter defaults.
func (req *ExportRequest) Bind(r *http.Request) error {
	if req.Filters.Source == "" {
		req.Filters.Source = domain.FilterAllSources
	}
	if req.Filters.Status == "" {
		req.Filters.Status = domain.StatusFilterAll
	}
	return nil
}

// Export produces the requested document and streams it back with a
// Content-Disposition filename. Zero matching rows yields 422 and no file.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	req := &ExportRequest{}
	if err := render.Bind(r, req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrInvalidRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("format", "must be xlsx or csv"))
		return
	}

	result, err := h.service.Export(r.Context(), exporter.Format(req.Format), req.Filters)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapExportError(err))
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("X-Export-Count", fmt.Sprintf("%d", result.Count))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("Failed to stream export",
			slog.String("filename", result.Filename),
			slog.String("error", err.Error()))
	}
}

// GetHistory returns the audit log, newest first, capped at 50 entries.
func (h *ExportHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries := h.history.Entries()
	render.JSON(w, r, map[string]interface{}{
		"history": entries,
		"count":   len(entries),
	})
}

// GetSnapshots returns the capped export snapshot cache.
func (h *ExportHandler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	snaps := h.history.RecentSnapshots()
	render.JSON(w, r, map[string]interface{}{
		"snapshots": snaps,
		"count":     len(snaps),
	})
}

func mapExportError(err error) error {
	switch {
	case errors.Is(err, services.ErrNoRowsMatched):
		return apierrors.ErrEmptyExport
	case errors.Is(err, services.ErrExportInProgress):
		return apierrors.ErrExportInProgress
	case errors.Is(err, services.ErrUnsupportedFormat):
		return apierrors.ErrValidation("format", "must be xlsx or csv")
	default:
		return err
	}
}
