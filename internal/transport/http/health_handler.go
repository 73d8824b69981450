package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tenderpulse/pkg/contracts"
)

// HealthHandler serves liveness and provider reachability.
type HealthHandler struct {
	service DataServiceInterface
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(service DataServiceInterface) *HealthHandler {
	return &HealthHandler{service: service}
}

// Routes returns the health routes.
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetHealth)
	return r
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Provider  string    `json:"provider"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// GetHealth reports service liveness. The service itself is healthy even
// when the provider is down; the provider state is reported alongside.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	providerStatus := "unreachable"
	if h.service.ProviderHealthy(r.Context()) {
		providerStatus = "healthy"
	}
	render.JSON(w, r, HealthResponse{
		Status:    "healthy",
		Provider:  providerStatus,
		Version:   contracts.Version,
		Timestamp: time.Now().UTC(),
	})
}
