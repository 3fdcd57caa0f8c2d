// Package httphandler implements the JSON API driving adapter and the
// middleware shared by every route.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/portfolio/internal/application"
)

// Handler is the HTTP driving adapter that serves the read-only JSON API.
type Handler struct {
	portfolioSvc *application.PortfolioService
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(portfolioSvc *application.PortfolioService, logger *slog.Logger) *Handler {
	return &Handler{
		portfolioSvc: portfolioSvc,
		logger:       logger,
	}
}

// RegisterAPIRoutes registers the JSON API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/certifications", h.ListCertifications)
	mux.HandleFunc("GET /api/v1/stats", h.Stats)
}

// ListCertifications returns the certifications split into active and expired
// as of the current time. Records with malformed dates are listed by name
// under "excluded".
func (h *Handler) ListCertifications(w http.ResponseWriter, _ *http.Request) {
	ov := h.portfolioSvc.Overview()
	writeJSON(w, http.StatusOK, toCertificationListResponse(ov))
}

// Stats returns the certification stat counters.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toStatsResponse(h.portfolioSvc.Stats()))
}

// Health reports that the process is serving and the dataset is loaded.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:         "ok",
		Time:           time.Now().UTC().Format(time.RFC3339),
		Certifications: len(h.portfolioSvc.Certifications()),
	})
}
